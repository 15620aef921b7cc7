package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Database credentials are not required under test, where the
// store is substituted. The Spoonacular key is deliberately not required at
// startup: the generate endpoint reports its absence per-request so the rest
// of the API stays usable without it.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if !IsTest() {
		if cfg.DBUser == "" {
			errors = append(errors, "DB_USER is required")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_NAME is required")
		}
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "PORT must not be empty")
	}
	if cfg.SpoonacularAPIURL == "" {
		errors = append(errors, "SPOONACULAR_API_URL must not be empty")
	}
	if len(cfg.AllowedOrigins) == 0 {
		errors = append(errors, "ALLOWED_ORIGINS must list at least one origin")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
