package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Backing store
	CSVPath string

	// Spreadsheet export
	ExcelPath string
	SheetName string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		CSVPath:   getEnv("KAKEIBO_CSV_PATH", "wallet_data.csv"),
		ExcelPath: getEnv("KAKEIBO_XLSX_PATH", "wallet_data.xlsx"),
		SheetName: getEnv("KAKEIBO_SHEET_NAME", "家計簿アプリ"),
		LogLevel:  getEnv("KAKEIBO_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error listing
// every problem found.
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.CSVPath) == "" {
		errors = append(errors, "CSV path cannot be empty")
	}
	if strings.TrimSpace(c.ExcelPath) == "" {
		errors = append(errors, "Excel path cannot be empty")
	}
	if strings.TrimSpace(c.SheetName) == "" {
		errors = append(errors, "sheet name cannot be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// SlogLevel maps the configured log level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
