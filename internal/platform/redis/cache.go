// Copyright (c) 2026 Quran API. All rights reserved.

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/msr7799/quran-api/internal/platform/constants"
)

// Cache is a JSON cache over a Redis client. It satisfies cache.Store.
//
// Keys are namespaced with [constants.RedisPrefixQuran].
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache wraps client with a fixed entry lifetime.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

/*
Get loads key into dest.

Returns:
  - bool: false on a cache miss
  - error: connectivity or decoding errors
*/
func (cache *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := cache.client.Get(ctx, constants.RedisPrefixQuran+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("redis_cache_decode_failed: %w", err)
	}
	return true, nil
}

// Set stores value under key as JSON.
func (cache *Cache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, constants.RedisPrefixQuran+key, payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}
