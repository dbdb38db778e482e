package config

import (
	"fmt"
	"os"
	"strconv"

	"pdf-translator/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	APIKey         string
	Model          string
	FallbackModel  string
	SourceLanguage string
	TargetLanguage string
	MaxChunkSize   int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		APIKey:         getEnvOrDefault("GOOGLE_API_KEY", ""),
		Model:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		FallbackModel:  getEnvOrDefault("GEMINI_FALLBACK_MODEL", "gemini-1.5-flash"),
		SourceLanguage: getEnvOrDefault("SOURCE_LANG", "Arabic"),
		TargetLanguage: getEnvOrDefault("TARGET_LANG", "Italian"),
		MaxChunkSize:   getEnvIntOrDefault("MAX_CHUNK_SIZE", 4000),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAPIKey returns the Gemini API key
func (c *AppConfig) GetAPIKey() string {
	return c.APIKey
}

// GetModel returns the primary Gemini model name
func (c *AppConfig) GetModel() string {
	return c.Model
}

// GetFallbackModel returns the model tried when the primary one fails
func (c *AppConfig) GetFallbackModel() string {
	return c.FallbackModel
}

// GetSourceLanguage returns the default source language
func (c *AppConfig) GetSourceLanguage() string {
	return c.SourceLanguage
}

// GetTargetLanguage returns the default target language
func (c *AppConfig) GetTargetLanguage() string {
	return c.TargetLanguage
}

// GetMaxChunkSize returns the maximum characters per translation request
func (c *AppConfig) GetMaxChunkSize() int {
	return c.MaxChunkSize
}

// Validate checks the parts of the configuration the server cannot run
// without. The API key is required up front so a misconfigured deployment
// fails at startup instead of on the first translation request.
func (c *AppConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable must be set")
	}
	if err := domain.ValidateLanguagePair(c.SourceLanguage, c.TargetLanguage); err != nil {
		return fmt.Errorf("invalid default language pair %q -> %q: %w", c.SourceLanguage, c.TargetLanguage, err)
	}
	if c.MaxChunkSize <= 0 {
		return fmt.Errorf("MAX_CHUNK_SIZE must be positive, got %d", c.MaxChunkSize)
	}
	return nil
}

// Helper functions for environment variable handling
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
