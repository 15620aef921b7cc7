package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Spoonacular lookup service configuration
	SpoonacularAPIKey string
	SpoonacularAPIURL string

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance from environment variables.
// In development a .env file in the working directory is loaded first,
// so local runs do not need exported variables.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; exported variables still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort: getEnv("PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "forkful"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularAPIURL: getEnv("SPOONACULAR_API_URL", "https://api.spoonacular.com"),

		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN builds the postgres connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// getEnv returns the value of the environment variable or a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list, dropping empty entries
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
