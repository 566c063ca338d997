package main

import (
	"os"
	"strings"

	"github.com/juju/errors"
)

// Config is the environment-level configuration of flowcfg.
type Config struct {
	// LoggingConfig is a loggo specification, e.g. "<root>=DEBUG".
	LoggingConfig string
}

// LoadFromEnv is intentionally simple: one variable with a default.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		LoggingConfig: getenv("FLOWCFG_LOGGING_CONFIG", "<root>=WARNING"),
	}
	if strings.TrimSpace(cfg.LoggingConfig) == "" {
		return Config{}, errors.NotValidf("empty FLOWCFG_LOGGING_CONFIG")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
