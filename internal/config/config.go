package config

import (
	"os"
	"strings"
	"time"

	"taskboard/internal/repository"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr         string
	DatabaseURL  string
	ScanInterval time.Duration
	LogLevel     string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Addr:         strings.TrimSpace(os.Getenv("TASKBOARD_ADDR")),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ScanInterval: parseInterval(strings.TrimSpace(os.Getenv("REMINDER_SCAN_INTERVAL"))),
		LogLevel:     strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = repository.DefaultDSN
	}
	if cfg.ScanInterval == 0 {
		cfg.ScanInterval = time.Minute
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return 0
	}
	return interval
}
