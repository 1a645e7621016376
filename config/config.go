// Copyright (c) 2026 The TokenForge developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads and validates the registry's process configuration
// from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/tokenforge/libtokenforge-go/storagefee"
)

// Config describes the registry process configuration.
type Config struct {
	// DataDir is where the bolt snapshot database lives.
	DataDir string `env:"TOKENFORGE_DATA_DIR" envDefault:"data"`

	// LogLevel controls the event logger verbosity.
	LogLevel string `env:"TOKENFORGE_LOG_LEVEL" envDefault:"info"`

	// PricePerByte is the storage price driving admission control.
	PricePerByte uint64 `env:"TOKENFORGE_PRICE_PER_BYTE" envDefault:"10"`
}

// FromEnv loads configuration from environment variables and validates it.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Costs derives the storage pricing model from the configured per-byte
// price.
func (c Config) Costs() storagefee.Costs {
	return storagefee.NewCosts(c.PricePerByte)
}
