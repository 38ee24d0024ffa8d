package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort     = 8001
	defaultName     = "Image API Provider"
	defaultPriceUSD = 0.01
	defaultWallet   = "0xPROVIDER_WALLET_ON_ARC"
	defaultCurrency = "USDC"
	defaultChain    = "Arc"
	defaultEndpoint = "/generate"
)

type Config struct {
	Port     int     `yaml:"port" envconfig:"PROVIDER_PORT"`
	Name     string  `yaml:"name" envconfig:"PROVIDER_NAME"`
	PriceUSD float64 `yaml:"price_usd" envconfig:"PROVIDER_PRICE_USD"`
	Wallet   string  `yaml:"wallet" envconfig:"PROVIDER_WALLET"`
	Currency string  `yaml:"currency" envconfig:"PROVIDER_CURRENCY"`
	Chain    string  `yaml:"chain" envconfig:"PROVIDER_CHAIN"`
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
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.PriceUSD == 0 {
		c.PriceUSD = defaultPriceUSD
	}
	if c.Wallet == "" {
		c.Wallet = defaultWallet
	}
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
	if c.Chain == "" {
		c.Chain = defaultChain
	}
}
