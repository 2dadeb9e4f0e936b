package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrUnsupportedLogFormat is returned for log formats other than text and json.
var ErrUnsupportedLogFormat = errors.New("unsupported log format")

// Config controls the demo's logging, the capabilities themselves take no configuration.
type Config struct {
	LogLevel  string `env:"BOOKDEMO_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"BOOKDEMO_LOG_FORMAT" envDefault:"text"`
}

// LoadConfigFromEnv parses the demo configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the slog.Logger described by cfg, writing to w.
func (cfg Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Join(ErrUnsupportedLogFormat, fmt.Errorf("format: %s", cfg.LogFormat))
	}
}
