// Package config loads runtime settings for the analyzer from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before lookup.
const EnvPrefix = "SALES_"

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidOutputFormat is returned for an output format other than json or yaml.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// Config holds application configuration loaded from the environment.
type Config struct {
	LogLevel        string
	LogFormat       string
	OutputFormat    string
	RevenueStrategy string
	BonusStrategy   string
}

// Load reads configuration from SALES_* environment variables and an
// optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel:        valueOrDefault(k.String("log_level"), "info"),
		LogFormat:       valueOrDefault(k.String("log_format"), "json"),
		OutputFormat:    strings.ToLower(valueOrDefault(k.String("output_format"), OutputJSON)),
		RevenueStrategy: strings.TrimSpace(k.String("revenue_strategy")),
		BonusStrategy:   strings.TrimSpace(k.String("bonus_strategy")),
	}

	if err := ValidateOutputFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateOutputFormat rejects formats the CLI cannot print.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, format)
	}
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
