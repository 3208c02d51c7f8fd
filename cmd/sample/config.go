package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the sample server configuration, read from a YAML file.
type config struct {
	Addr       string    `yaml:"addr"`
	LogLevel   string    `yaml:"log_level"`
	AdminToken string    `yaml:"admin_token"`
	RateLimit  rateLimit `yaml:"rate_limit"`
}

type rateLimit struct {
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`
}

func defaultConfig() config {
	return config{
		Addr:       ":8080",
		LogLevel:   "info",
		AdminToken: "change-me",
		RateLimit:  rateLimit{Rate: 20, Burst: 40},
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path) //nolint:gosec // user-provided CLI flag
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
