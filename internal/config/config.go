// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is where the configuration file is expected, relative to the
// working directory the bot is started from.
const DefaultPath = "config.json"

// Documented defaults, applied by the *OrDefault accessors.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 800
)

// Error variables for the two failure conditions of Load.
var (
	// ErrNotFound indicates the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrMalformed indicates the configuration file is not valid JSON or
	// carries values of the wrong type.
	ErrMalformed = errors.New("config file malformed")
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the bot configuration.
//
// Temperature and MaxTokens are pointers so that a key that is present with
// a zero value is distinguishable from an absent key; only truly absent keys
// fall back to the documented defaults.
type Config struct {
	SystemPrompt string   `json:"system_prompt" koanf:"system_prompt"`
	Model        string   `json:"model" koanf:"model"`
	Temperature  *float64 `json:"temperature" koanf:"temperature"`
	MaxTokens    *int     `json:"max_tokens" koanf:"max_tokens"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the given JSON file.
//
// A missing file fails with ErrNotFound; content that is not valid JSON, has
// wrong field types, or fails validation fails with ErrMalformed. No
// defaults are substituted here.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.MaxTokens != nil && *c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", *c.MaxTokens)
	}
	return nil
}

// =============================================================================
// DEFAULT-APPLYING ACCESSORS
// =============================================================================

// ModelOrDefault returns the configured model identifier, or DefaultModel
// when the key is absent.
func (c *Config) ModelOrDefault() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// TemperatureOrDefault returns the configured sampling temperature, or
// DefaultTemperature when the key is absent. A configured value of 0 is
// respected.
func (c *Config) TemperatureOrDefault() float64 {
	if c.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Temperature
}

// MaxTokensOrDefault returns the configured reply token budget, or
// DefaultMaxTokens when the key is absent.
func (c *Config) MaxTokensOrDefault() int {
	if c.MaxTokens == nil {
		return DefaultMaxTokens
	}
	return *c.MaxTokens
}
