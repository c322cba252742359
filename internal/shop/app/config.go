package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string        // Base URL of the backend, including /api
	DatabaseFile string        // Path to the local SQLite state file
	HTTPTimeout  time.Duration // Per-request timeout for backend calls
	Env          string        // Environment (dev, prod) (default: prod)
	LogLevel     string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat    string        // Log format (text, json) (default: text)
}

func LoadConfig() Config {
	// A .env beside the binary is a convenience for development; absence is
	// not an error.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:   getEnvOrDefault("SWEETSHOP_API_URL", "http://localhost:5000/api"),
		DatabaseFile: getEnvOrDefault("SWEETSHOP_DB_FILE", defaultDatabaseFile()),
		HTTPTimeout:  getEnvDurationOrDefault("SWEETSHOP_HTTP_TIMEOUT", 10*time.Second),
		Env:          getEnvOrDefault("ENV", "prod"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

// defaultDatabaseFile keeps per-user state out of the working directory.
func defaultDatabaseFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "sweetshop.db"
	}

	dir := filepath.Join(configDir, "sweetshop")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "sweetshop.db"
	}

	return filepath.Join(dir, "sweetshop.db")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
