package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

// Config holds the file locations Questboard uses. Everything defaults to
// dotfiles under the user's home directory and can be overridden through the
// environment.
type Config struct {
	DBPath      string `env:"QB_DB"`
	SessionPath string `env:"QB_SESSION"`
	KeyPath     string `env:"QB_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = filepath.Join(home, ".questboard", "session")
	}
	if cfg.KeyPath == "" {
		cfg.KeyPath = filepath.Join(home, ".questboard", "signing.key")
	}
	return &cfg, nil
}
