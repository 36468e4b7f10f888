// Copyright (c) 2026 Quran API. All rights reserved.

package config_test

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/platform/config"
)

// noEnvFile points godotenv at a path that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "FULL-DATA", cfg.SurahCollection)
	assert.Equal(t, "tafseer", cfg.TafsirCollection)
	assert.Equal(t, "bookmarks", cfg.BookmarkCollection)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_MongoURIRequired(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := config.Load(noEnvFile(t))

	assert.ErrorContains(t, err, "MONGODB_URI")
}

func TestLoad_MemoryDriversNeedNoConnections(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BOOKMARK_STORE", "memory")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.False(t, cfg.UsesMongo())
}

func TestLoad_PostgresBookmarksNeedDatabaseURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BOOKMARK_STORE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load(noEnvFile(t))

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load(noEnvFile(t))

	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nBOOKMARK_STORE=memory\nCORS_ORIGINS=https://a.example, https://b.example\n"), 0o600))

	// godotenv never overrides variables that are already set.
	t.Setenv("SERVER_PORT", "8081")
	t.Cleanup(func() {
		os.Unsetenv("STORE_DRIVER")
		os.Unsetenv("BOOKMARK_STORE")
		os.Unsetenv("CORS_ORIGINS")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rps", "RATE_LIMIT_RPS", "0"},
		{"negative rps", "RATE_LIMIT_RPS", "-1.5"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
		{"negative burst", "RATE_LIMIT_BURST", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_DRIVER", "memory")
			t.Setenv("BOOKMARK_STORE", "memory")
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(noEnvFile(t))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BOOKMARK_STORE", "memory")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,fd00::/8")
	cfg, err = config.Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("fd00::/8"),
	}, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "not-a-cidr")
	_, err = config.Load(noEnvFile(t))
	assert.Error(t, err)
}
