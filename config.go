package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort         = 8000
	defaultGeminiModel  = "gemini-2.0-flash"
	defaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultGroqAPIURL   = "https://api.groq.com/openai/v1"
	defaultReceiptStore = "memory"
)

var defaultGroqModels = []string{
	"llama-3.1-70b-versatile",
	"llama-3.1-8b-instant",
	"mixtral-8x7b-32768",
}

type Config struct {
	Port           int   `yaml:"port" envconfig:"PORT"`
	SimulationMode *bool `yaml:"simulation_mode" envconfig:"SIMULATION_MODE"`

	// AI plan strategies. Either key may be absent; with both absent the
	// agent degrades to the calculation fallback.
	GeminiAPIKey string   `yaml:"gemini_api_key" envconfig:"GEMINI_API_KEY"`
	GeminiModel  string   `yaml:"gemini_model" envconfig:"GEMINI_MODEL"`
	GeminiAPIURL string   `yaml:"gemini_api_url" envconfig:"GEMINI_API_URL"`
	GroqAPIKey   string   `yaml:"groq_api_key" envconfig:"GROQ_API_KEY"`
	GroqModels   []string `yaml:"groq_models" envconfig:"GROQ_MODELS"`
	GroqAPIURL   string   `yaml:"groq_api_url" envconfig:"GROQ_API_URL"`

	// Receipt storage. memory, sqlite, or postgres.
	ReceiptStore  string `yaml:"receipt_store" envconfig:"RECEIPT_STORE"`
	ReceiptDBFile string `yaml:"receipt_db_file" envconfig:"RECEIPT_DB_FILE"`
	ReceiptDB     string `yaml:"receipt_db" envconfig:"RECEIPT_DB"`

	CircleAPIKey string `yaml:"circle_api_key" envconfig:"CIRCLE_API_KEY"`
	NotifierNsec string `yaml:"notifier_nsec" envconfig:"NOTIFIER_NSEC"`
}

// Load Config from a yaml file at path.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return err
	}

	c.applyDefaults()
	return nil
}

// Load Config from the environment.
func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.SimulationMode == nil {
		simulated := true
		c.SimulationMode = &simulated
	}
	if c.GeminiModel == "" {
		c.GeminiModel = defaultGeminiModel
	}
	if c.GeminiAPIURL == "" {
		c.GeminiAPIURL = defaultGeminiAPIURL
	}
	if len(c.GroqModels) == 0 {
		c.GroqModels = defaultGroqModels
	}
	if c.GroqAPIURL == "" {
		c.GroqAPIURL = defaultGroqAPIURL
	}
	if c.ReceiptStore == "" {
		c.ReceiptStore = defaultReceiptStore
	}
}
