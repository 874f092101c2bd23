package e2e

import (
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for E2E tests
type Config struct {
	ConfigPath  string
	AccessToken string
	Timeout     time.Duration
	Cleanup     bool
}

// LoadConfig loads E2E test configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		ConfigPath:  getEnvOrDefault("ONEDRIVE_E2E_CONFIG_PATH", "../config.json"),
		AccessToken: os.Getenv("ONEDRIVE_E2E_ACCESS_TOKEN"),
		Timeout:     getTimeoutFromEnv("ONEDRIVE_E2E_TIMEOUT", 120*time.Second),
		Cleanup:     getBoolFromEnv("ONEDRIVE_E2E_CLEANUP", true),
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getTimeoutFromEnv parses timeout from environment variable
func getTimeoutFromEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getBoolFromEnv parses boolean from environment variable
func getBoolFromEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return result
}
