package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the API.
type Config struct {
	JWTSecret string // HMAC secret used to verify bearer tokens
	Port      string // HTTP port (default: 8080)
	Env       string // "development" or "production"
}

// LoadConfig loads environment variables into a Config struct and validates
// them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
