package config

import (
	"os"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	DataDir     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:5173"),
		Environment: getEnv("NODE_ENV", "development"),
		DataDir:     getEnv("DATA_DIR", "./data"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
