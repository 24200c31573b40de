// Package config loads application settings from environment variables
// (populated from a .env file by main).
package config

import (
	"errors"
	"os"
)

// Config holds the connection settings for both administrative systems.
type Config struct {
	SourceURL   string
	SourceToken string
	TargetURL   string
	TargetToken string
}

// LoadConfig reads and validates the required environment variables. A
// missing variable aborts the run before any remote call is made.
func LoadConfig() (*Config, error) {
	sourceURL := os.Getenv("SOURCE_API_URL")
	if sourceURL == "" {
		return nil, errors.New("SOURCE_API_URL environment variable not set")
	}

	sourceToken := os.Getenv("SOURCE_API_TOKEN")
	if sourceToken == "" {
		return nil, errors.New("SOURCE_API_TOKEN environment variable not set")
	}

	targetURL := os.Getenv("TARGET_API_URL")
	if targetURL == "" {
		return nil, errors.New("TARGET_API_URL environment variable not set")
	}

	targetToken := os.Getenv("TARGET_API_TOKEN")
	if targetToken == "" {
		return nil, errors.New("TARGET_API_TOKEN environment variable not set")
	}

	return &Config{
		SourceURL:   sourceURL,
		SourceToken: sourceToken,
		TargetURL:   targetURL,
		TargetToken: targetToken,
	}, nil
}
