package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SMSFileConfig is the optional YAML override for SMS gateway settings.
// Environment variables provide the defaults; a config file lets deployments
// keep gateway credentials out of the process environment.
type SMSFileConfig struct {
	GatewayURL     string  `yaml:"gateway_url"`
	APIKey         string  `yaml:"api_key"`
	SenderID       string  `yaml:"sender_id"`
	CostPerMessage float64 `yaml:"cost_per_message"`
}

// ApplySMSFile merges settings from the YAML file at path into cfg.
// Only non-zero file values override the environment-derived settings.
func (cfg *Config) ApplySMSFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read SMS config file: %w", err)
	}

	var fc SMSFileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse SMS config file: %w", err)
	}

	if fc.GatewayURL != "" {
		cfg.SMSGatewayURL = fc.GatewayURL
	}
	if fc.APIKey != "" {
		cfg.SMSGatewayAPIKey = fc.APIKey
	}
	if fc.SenderID != "" {
		cfg.SMSSenderID = fc.SenderID
	}
	if fc.CostPerMessage > 0 {
		cfg.SMSCostPerMessage = fc.CostPerMessage
	}

	return nil
}
