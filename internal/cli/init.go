// Package cli provides common CLI initialization utilities shared by
// the command entrypoints.
package cli

import (
	"log/slog"

	"github.com/joho/godotenv"

	"kakeibo/internal/config"
	"kakeibo/internal/log"
)

// SetupLogger initializes structured logging at the given level and
// installs it as the default logger.
func SetupLogger(level slog.Level) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = level
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
