// Copyright (c) 2026 Foodieblog. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, auth) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the foodieblog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Token signing. Lifetimes are expressed in milliseconds.
	JWTSecret         string `env:"JWT_SECRET,required"`
	JWTAccessExpiryMs int64  `env:"JWT_ACCESS_EXPIRY_MS"  envDefault:"900000"`    // 15m
	JWTRefreshExpiry  int64  `env:"JWT_REFRESH_EXPIRY_MS" envDefault:"1209600000"` // 14d

	// Fixed-window rate limiting for guarded public endpoints.
	RateLimitMaxRequests   int   `env:"RATELIMIT_MAX_REQUESTS"   envDefault:"30"`
	RateLimitWindowSeconds int64 `env:"RATELIMIT_WINDOW_SECONDS" envDefault:"60"`

	// MaxBodyBytes is the request body ceiling, checked against Content-Length.
	MaxBodyBytes int64 `env:"REQUEST_MAX_BODY_BYTES" envDefault:"1048576"` // 1MiB
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
