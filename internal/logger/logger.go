// Package logger builds the application zerolog.Logger from validated
// configuration. Console output for humans in dev, JSON on stdout
// everywhere else.
package logger

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Config struct {
	Level          string `mapstructure:"level" json:"level,omitempty" validate:"oneof=debug info warn error"`
	Env            string `mapstructure:"env" json:"env,omitempty" validate:"oneof=dev staging prod"`
	ServiceName    string `mapstructure:"serviceName" json:"serviceName,omitempty"`
	ServiceVersion string `mapstructure:"serviceVersion" json:"serviceVersion,omitempty"`
	WithCaller     bool   `mapstructure:"withCaller" json:"withCaller,omitempty"`
}

func (c *Config) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Env == "" {
		c.Env = "dev"
	}
	if c.ServiceName == "" {
		c.ServiceName = "scoreboard-service"
	}
}

// New constructs the root logger; every component derives from it via
// With() so service/version/env fields appear on all lines.
func New(cfg *Config) (zerolog.Logger, error) {
	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
	}

	var logger zerolog.Logger
	switch cfg.Env {
	case "prod", "staging":
		logger = zerolog.New(os.Stdout)
	default:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	logger = logger.Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()
	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	return logger, nil
}
