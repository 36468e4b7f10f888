// Copyright (c) 2026 Quran API. All rights reserved.

package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/platform/constants"
)

func TestClientOptions(t *testing.T) {
	options, err := clientOptions("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, constants.AppName, options.ClientName)
	assert.Equal(t, maxRetries, options.MaxRetries)
	assert.Equal(t, readTimeout, options.ReadTimeout)
}

func TestClientOptions_InvalidURL(t *testing.T) {
	_, err := clientOptions("http://not-redis")
	assert.ErrorContains(t, err, "redis: invalid URL")
}
