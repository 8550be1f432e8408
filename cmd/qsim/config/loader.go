// SPDX-License-Identifier: MIT

// Package config loads qsim settings: built-in defaults, then an optional
// YAML file, then QSIM_* environment variables. Command-line flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultQubits    = 2
	DefaultShots     = 1024
	DefaultEngine    = "paired"
	DefaultMaxQubits = 5
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultOutput    = "text"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds the effective CLI settings.
type Config struct {
	// Qubits is checked against MaxQubits by the caller once flags are applied.
	Qubits    int       `yaml:"qubits" validate:"min=1"`
	Shots     int       `yaml:"shots" validate:"min=1"`
	Seed      *int64    `yaml:"seed,omitempty"`
	Engine    string    `yaml:"engine" validate:"oneof=paired tensor"`
	MaxQubits int       `yaml:"max_qubits" validate:"min=1,max=30"`
	Workers   int       `yaml:"workers" validate:"gte=0"`
	Output    string    `yaml:"output" validate:"oneof=text json"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var configValidate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Qubits:    DefaultQubits,
		Shots:     DefaultShots,
		Engine:    DefaultEngine,
		MaxQubits: DefaultMaxQubits,
		Output:    DefaultOutput,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it. Keys absent from
// the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %v: %w", path, err, ErrInvalidConfig)
	}

	return nil
}

// loadEnv applies QSIM_SHOTS, QSIM_SEED, QSIM_ENGINE, QSIM_MAX_QUBITS,
// QSIM_WORKERS, QSIM_LOG_LEVEL and QSIM_LOG_FORMAT.
func loadEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"QSIM_SHOTS", &cfg.Shots},
		{"QSIM_MAX_QUBITS", &cfg.MaxQubits},
		{"QSIM_WORKERS", &cfg.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %v: %w", e.key, v, err, ErrInvalidConfig)
		}
		*e.dst = n
	}
	if v := os.Getenv("QSIM_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: QSIM_SEED=%q: %v: %w", v, err, ErrInvalidConfig)
		}
		cfg.Seed = &s
	}
	if v := os.Getenv("QSIM_ENGINE"); v != "" {
		cfg.Engine = strings.ToLower(v)
	}
	if v := os.Getenv("QSIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("QSIM_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}

	return nil
}

// Validate checks struct tags.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("config: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// SlogLevel maps Log.Level to a slog.Level. Unknown values map to Warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
