package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromFile(t *testing.T) {
	configFile, err := os.CreateTemp("", "config.*.yml")
	assert.NoError(t, err)

	defer os.Remove(configFile.Name())

	_, err = configFile.Write([]byte(`
port: 9000
simulation_mode: false
gemini_api_key: test-gemini
groq_api_key: test-groq
groq_models:
  - llama-3.1-8b-instant
receipt_store: sqlite
receipt_db_file: ./receipts.db
`))
	assert.NoError(t, err)

	var cfg Config
	err = cfg.Load(configFile.Name())
	assert.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.NotNil(t, cfg.SimulationMode)
	assert.False(t, *cfg.SimulationMode)
	assert.Equal(t, "test-gemini", cfg.GeminiAPIKey)
	assert.Equal(t, "test-groq", cfg.GroqAPIKey)
	assert.Equal(t, []string{"llama-3.1-8b-instant"}, cfg.GroqModels)
	assert.Equal(t, "sqlite", cfg.ReceiptStore)
	assert.Equal(t, "./receipts.db", cfg.ReceiptDBFile)
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.Port)
	assert.NotNil(t, cfg.SimulationMode)
	assert.True(t, *cfg.SimulationMode, "simulation is on unless explicitly disabled")
	assert.Equal(t, defaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, defaultGroqModels, cfg.GroqModels)
	assert.Equal(t, defaultReceiptStore, cfg.ReceiptStore)
}
