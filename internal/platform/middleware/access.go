// Copyright (c) 2026 Quran API. All rights reserved.

package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/ctxutil"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP.
type visitors struct {
	mu    sync.Mutex
	byIP  map[string]*visitor
	limit rate.Limit
	burst int
}

// wait reports how long ip must wait before its next request is admitted.
// Zero means the request is admitted now and a token has been spent.
func (set *visitors) wait(ip string, now time.Time) time.Duration {
	set.mu.Lock()
	defer set.mu.Unlock()

	entry, ok := set.byIP[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(set.limit, set.burst)}
		set.byIP[ip] = entry
	}
	entry.lastSeen = now

	reservation := entry.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return constants.RateLimitClientTTL
	}
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
	}
	return delay
}

func (set *visitors) evictIdle(now time.Time, ttl time.Duration) {
	set.mu.Lock()
	defer set.mu.Unlock()

	for ip, entry := range set.byIP {
		if now.Sub(entry.lastSeen) > ttl {
			delete(set.byIP, ip)
		}
	}
}

// RateLimit applies a per-IP token bucket of rps with the given burst.
// Rejected requests get 429 with a Retry-After header in whole seconds.
// The idle-visitor sweeper stops when ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	set := &visitors{
		byIP:  make(map[string]*visitor),
		limit: rate.Limit(rps),
		burst: burst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				set.evictIdle(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			delay := set.wait(RealIP(request), time.Now())
			if delay <= 0 {
				next.ServeHTTP(writer, request)
				return
			}

			seconds := int(math.Ceil(delay.Seconds()))
			writer.Header().Set("Retry-After", strconv.Itoa(seconds))
			respond.Error(writer, request, apperr.RateLimited(seconds))
		})
	}
}

// # Cross-Origin Resource Sharing

// CORS builds the rs/cors handler for the configured origins.
//
// An empty list or a lone "*" allows every origin without credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*")
	if wildcard {
		allowedOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", constants.HeaderContentType, constants.HeaderXRequestID},
		ExposedHeaders:   []string{constants.HeaderXRequestID, "Retry-After"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}).Handler
}

// # Client Address

// ClientIP resolves the client address once and stores it for [RealIP].
//
// Proxy headers are believed only when the connection comes from one of
// trusted. X-Real-IP wins when present; otherwise X-Forwarded-For is walked
// from the right, skipping trusted hops, so a client cannot pick its own
// address by prepending entries.
func ClientIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ip := resolveClientIP(request, trusted)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithClientIP(request.Context(), ip)))
		})
	}
}

// RealIP returns the address [ClientIP] resolved, or the connection's
// remote host when that middleware did not run.
func RealIP(request *http.Request) string {
	if ip := ctxutil.GetClientIP(request.Context()); ip != "" {
		return ip
	}
	return remoteHost(request)
}

func resolveClientIP(request *http.Request, trusted []netip.Prefix) string {
	peer := remoteHost(request)
	if !isTrusted(peer, trusted) {
		return peer
	}

	if ip, err := netip.ParseAddr(strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP))); err == nil {
		return ip.String()
	}

	hops := strings.Split(request.Header.Get(constants.HeaderXForwardedFor), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" || isTrusted(hop, trusted) {
			continue
		}
		if ip, err := netip.ParseAddr(hop); err == nil {
			return ip.String()
		}
		// A garbled hop ends the trusted chain.
		break
	}
	return peer
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
