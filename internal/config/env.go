package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	apiURL := os.Getenv("API_URL")
	sessionSecret := os.Getenv("SESSION_SECRET")
	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")

	if apiURL == "" {
		return nil, fmt.Errorf("API_URL environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if port == "" {
		port = "8080"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		APIURL:        strings.TrimRight(apiURL, "/"),
		SessionSecret: sessionSecret,
		Port:          port,
		Environment:   environment,
	}, nil
}
