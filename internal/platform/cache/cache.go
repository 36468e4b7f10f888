// Copyright (c) 2026 Quran API. All rights reserved.

// Package cache provides the read-through helper the services use for
// whole-collection aggregations.
//
// Surah and tafsir data is read-only while the server runs, so entries are
// never invalidated; they only expire.
package cache

import (
	"context"
	"log/slog"

	"github.com/msr7799/quran-api/internal/platform/ctxutil"
)

// Store is a JSON key/value cache. [redis.Cache] implements it.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

/*
Load returns the cached value for key, or calls load and caches its result.

A nil store disables caching. Cache failures are logged and never returned:
the caller always falls through to load.
*/
func Load[T any](ctx context.Context, store Store, key string, load func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(ctx)
	}

	logger := ctxutil.GetLogger(ctx)

	var cached T
	hit, err := store.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := store.Set(ctx, key, value); err != nil {
		logger.Warn("cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
	return value, nil
}
