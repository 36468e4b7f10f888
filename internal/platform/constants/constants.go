// Copyright (c) 2026 Quran API. All rights reserved.

// Package constants holds the fixed limits and names shared across layers:
// server timing, rate-limit bookkeeping, search result caps and header keys.
// Anything an operator may want to tune lives in config instead.
package constants

import "time"

// # Metadata

const (
	AppName    = "quran-api"
	AppVersion = "0.1.0-dev"

	// RootBanner is the plain-text body served on GET /.
	RootBanner = "Quran API server is running"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds a handler, store round-trips included.
	// It must stay below DefaultWriteTimeout or the 504 never reaches the client.
	GlobalRequestTimeout = 8 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often idle visitors are swept.
	RateLimitCleanupInterval = time.Minute

	// RateLimitClientTTL is how long a visitor may stay idle before its
	// bucket is dropped (and refilled on its next request).
	RateLimitClientTTL = 3 * time.Minute
)

// # Query Caps

const (
	// VerseSearchLimit caps GET /api/search/quran/{query}.
	VerseSearchLimit = 50

	// TafsirSearchLimit caps GET /api/search/tafsir/{query}.
	TafsirSearchLimit = 30

	// CombinedVerseLimit and CombinedTafsirLimit cap GET /api/search/all/{query}.
	CombinedVerseLimit  = 20
	CombinedTafsirLimit = 10

	// MaxQueryLength bounds free-text search input (in runes).
	MaxQueryLength = 200

	// MaxBodyBytes bounds JSON request bodies.
	MaxBodyBytes = 16 << 10
)

// # Quran Bounds

// SurahCount bounds surah ids accepted in request bodies.
const SurahCount = 114

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderContentType   = "Content-Type"
)

// # JSON Field Identifiers

const (
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// RedisPrefixQuran namespaces every cache key.
const RedisPrefixQuran = "quran:"
