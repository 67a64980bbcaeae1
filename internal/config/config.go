package config

import (
	"os"
	"strconv"

	"facalloc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Allocation AllocationConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
	Host string
}

// UploadConfig holds upload handling settings
type UploadConfig struct {
	MaxFileSize int64 // Maximum upload size in bytes
	TempDir     string
}

// AllocationConfig holds allocation algorithm settings
type AllocationConfig struct {
	// ReferenceColumn is the column whose right-hand neighbours are
	// treated as faculty columns. Students are sorted by it descending.
	ReferenceColumn string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
			Host: getEnvOrDefault("HOST", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 10*1024*1024),
			TempDir:     getEnvOrDefault("UPLOAD_TEMP_DIR", os.TempDir()),
		},
		Allocation: AllocationConfig{
			ReferenceColumn: getEnvOrDefault("REFERENCE_COLUMN", "CGPA"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxFileSize <= 0 {
		return errors.ConfigInvalid("max upload size must be positive")
	}
	if config.Allocation.ReferenceColumn == "" {
		return errors.ConfigInvalid("reference column is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
