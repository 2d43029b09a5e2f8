// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable, as in CALC_LOG_LEVEL.
const envPrefix = "calc"

// Config controls the demo's logging and output.
type Config struct {
	LogLevel  string `toml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `toml:"log_format" envconfig:"LOG_FORMAT" validate:"oneof=json console"`

	// HistoryTail is how many of the most recent records are
	// printed at the end of the demo.
	HistoryTail int `toml:"history_tail" envconfig:"HISTORY_TAIL" validate:"min=1,max=100"`

	// Digits after the decimal point for trigonometric results and
	// for money.
	TrigPrecision  int `toml:"trig_precision" envconfig:"TRIG_PRECISION" validate:"min=0,max=15"`
	MoneyPrecision int `toml:"money_precision" envconfig:"MONEY_PRECISION" validate:"min=0,max=10"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:       "warn",
		LogFormat:      "console",
		HistoryTail:    5,
		TrigPrecision:  4,
		MoneyPrecision: 2,
	}
}

// loadConfig layers the TOML file at path (if path is not empty) and
// then CALC_* environment variables over the defaults, and validates
// the result.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			keys := make([]string, len(undec))
			for i, k := range undec {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads environment variables from path when it exists.
// Variables already set in the process environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
