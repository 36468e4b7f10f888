// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file,
when present, is loaded first via 'joho/godotenv' so development setups keep
working without exporting variables by hand.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Mongo, Postgres, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Collection names are explicit settings because the stored names ("FULL-DATA",
"tafseer") do not follow the model names.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the backend for surahs and tafsir (mongo | memory).
	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`

	// FixturePath is the JSON dataset served by the memory driver.
	// Empty means the embedded sample dataset.
	FixturePath string `env:"FIXTURE_PATH"`

	// Document Store (MongoDB)
	MongoURI           string `env:"MONGODB_URI"`
	MongoDatabase      string `env:"MONGODB_DATABASE"    envDefault:"quran"`
	SurahCollection    string `env:"SURAH_COLLECTION"    envDefault:"FULL-DATA"`
	TafsirCollection   string `env:"TAFSIR_COLLECTION"   envDefault:"tafseer"`
	BookmarkCollection string `env:"BOOKMARK_COLLECTION" envDefault:"bookmarks"`

	// BookmarkStore selects the backend for bookmarks (mongo | postgres | memory).
	BookmarkStore string `env:"BOOKMARK_STORE" envDefault:"mongo"`

	// Relational Database (PostgreSQL), only used by the postgres bookmark store.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Read-through cache (Redis). Disabled when empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	// Cross-Origin Resource Sharing
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// TrustedProxies lists the CIDR ranges (e.g. 10.0.0.0/8) whose
	// X-Real-IP and X-Forwarded-For headers are believed. Empty trusts no one
	// and keys clients by their connection address.
	TrustedProxies []netip.Prefix `env:"TRUSTED_PROXIES" envSeparator:","`
}

// # Configuration Loading

// Load reads an optional .env file, then parses environment variables into a [Config].
func Load(envFiles ...string) (*Config, error) {

	// A missing .env file is normal outside development.
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the cross-field rules env tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, c.StoreDriver)
	}

	switch c.BookmarkStore {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: BOOKMARK_STORE must be %q, %q or %q, got %q", DriverMongo, DriverPostgres, DriverMemory, c.BookmarkStore)
	}

	if c.UsesMongo() && c.MongoURI == "" {
		return errors.New("config: MONGODB_URI is required when a mongo store is selected")
	}

	if c.BookmarkStore == DriverPostgres && c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is required when BOOKMARK_STORE=postgres")
	}

	if c.CacheEnabled() && c.CacheTTL <= 0 {
		return errors.New("config: CACHE_TTL must be positive")
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}

	return nil
}

// UsesMongo reports whether any store is backed by MongoDB.
func (c *Config) UsesMongo() bool {
	return c.StoreDriver == DriverMongo || c.BookmarkStore == DriverMongo
}

// CacheEnabled reports whether the Redis read-through cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// AllowedOrigins splits CORS_ORIGINS into a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
