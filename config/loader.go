package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse unmarshals, validates and defaults a raw YAML config.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Dataset); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Map); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.Dataset.Timezone == "" {
		cfg.Dataset.Timezone = "UTC"
	}
	if cfg.Map.UnfilteredRadiusMax == 0 {
		cfg.Map.UnfilteredRadiusMax = 25
	}
	if cfg.Map.FilteredRadiusMin == 0 {
		cfg.Map.FilteredRadiusMin = 3
	}
	if cfg.Map.FilteredRadiusMax == 0 {
		cfg.Map.FilteredRadiusMax = 50
	}
}
