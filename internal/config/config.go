// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is where metrics are written when a run ends. Empty disables the export.
	MetricsTextfile string

	// GeneratorMaxAttempts bounds the draws per generation run. Zero means unbounded.
	GeneratorMaxAttempts int
	// GeneratorSeed selects a reproducible random sequence. Zero draws from crypto/rand.
	GeneratorSeed uint64
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "warn"),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "bsn_generator"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),

		GeneratorMaxAttempts: env.GetInt("GENERATOR_MAX_ATTEMPTS", 0),
		GeneratorSeed:        uint64(env.GetInt("GENERATOR_SEED", 0)), //nolint:gosec // any bit pattern is a usable seed
	}
}

// loadDotEnv searches for a .env file from the current directory up to the root
// directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
