// Package config provides configuration loading and validation for the
// CV generator service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, read from the environment.
type Config struct {
	Port int

	// Object storage (templates + published artifacts).
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
	TemplateBucket   string
	ArtifactBucket   string

	// How long a retrieval handle stays valid.
	SignedURLTTL time.Duration

	// External collaborators.
	ConverterURL    string
	ConverterAPIKey string
	ParserURL       string

	// Optional: generation history persistence.
	DatabaseURL string

	// Optional: bearer-token auth. Auth is disabled when empty.
	JWTSecret string

	// Generator profile defaults.
	DefaultTemplate string
	ProfilePath     string
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything optional.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             8080,
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		TemplateBucket:   envOr("TEMPLATE_BUCKET", "cv-templates"),
		ArtifactBucket:   envOr("ARTIFACT_BUCKET", "generated-cvs"),
		SignedURLTTL:     time.Hour,
		ConverterURL:     os.Getenv("CONVERTER_URL"),
		ConverterAPIKey:  os.Getenv("CONVERTER_API_KEY"),
		ParserURL:        os.Getenv("PARSER_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DefaultTemplate:  envOr("DEFAULT_TEMPLATE", "default.docx"),
		ProfilePath:      os.Getenv("PROFILE_PATH"),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("STORAGE_USE_SSL"); raw != "" {
		useSSL, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid STORAGE_USE_SSL: %v", err)
		}
		cfg.StorageUseSSL = useSSL
	}

	if raw := os.Getenv("SIGNED_URL_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SIGNED_URL_TTL_MINUTES: %v", err)
		}
		if minutes < 1 {
			return nil, fmt.Errorf("SIGNED_URL_TTL_MINUTES must be at least 1, got: %d", minutes)
		}
		cfg.SignedURLTTL = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}

// Validate checks that everything the pipeline cannot run without is set.
func (c *Config) Validate() error {
	if c.StorageEndpoint == "" {
		return fmt.Errorf("STORAGE_ENDPOINT is required")
	}
	if c.TemplateBucket == "" {
		return fmt.Errorf("TEMPLATE_BUCKET cannot be empty")
	}
	if c.ArtifactBucket == "" {
		return fmt.Errorf("ARTIFACT_BUCKET cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
