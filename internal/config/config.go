// Package config centralizes the environment-driven server configuration.
// Database pool settings live in the database package; everything HTTP-level
// is here.
package config

import (
	"os"
	"strconv"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Port the server listens on. Default: 4000
	Port string

	// CORSOrigins is the comma-separated list of allowed origins.
	// Default: http://localhost:3000 (the frontend dev server)
	CORSOrigins string

	// BodyLimitMB caps the JSON request body size in MiB. Default: 50
	BodyLimitMB int

	// Env is the deployment environment ("production" enables production logging)
	Env string
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "4000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 50),
		Env:         getEnv("ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
