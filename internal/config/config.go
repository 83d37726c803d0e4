package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort    string
	DatabaseType  string
	DatabasePath  string
	DatabaseURL   string
	DataPath      string
	TemplatesPath string
	SessionSecret string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("PORT", "8080"),
		DatabaseType:  getEnv("DB_TYPE", "sqlite"),
		DatabasePath:  getEnv("DB_PATH", "./data/game_stats.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DataPath:      getEnv("DATA_PATH", "./data/initial_class_list.json"),
		TemplatesPath: getEnv("TEMPLATES_PATH", "./internal/templates"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-insecure-secret"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
