// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package api assembles the public HTTP surface: the middleware chain, the
infrastructure probes and the /api tree.

Feature handlers are built in cmd/api and handed over in [Handlers]; this
package only decides where they are mounted, so it never sees a store.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/msr7799/quran-api/internal/core/audio"
	"github.com/msr7799/quran-api/internal/core/bookmark"
	"github.com/msr7799/quran-api/internal/core/search"
	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/core/tafsir"
	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/config"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/middleware"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

// Server owns the listening [http.Server].
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// Handlers is everything the router mounts.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when every configured store answers.
	Readiness http.HandlerFunc

	Surah    *surah.Handler
	Tafsir   *tafsir.Handler
	Audio    *audio.Handler
	Search   *search.Handler
	Bookmark *bookmark.Handler
}

// NewServer binds the router to cfg.ServerPort. ctx bounds background work
// started by the middleware, such as the rate limiter's sweeper.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           NewRouter(ctx, cfg, log, h),
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree. Split out so tests can drive it
// through httptest without binding a port.
func NewRouter(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	for _, layer := range middlewareChain(ctx, cfg, log) {
		r.Use(layer.handler)
	}

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})

	r.Get("/", banner)
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	r.Route("/api", func(api chi.Router) {
		api.Route("/quran", func(quran chi.Router) {
			h.Surah.RegisterRoutes(quran)
			quran.Get("/reciters", h.Audio.ListReciters)
			quran.Mount("/tafsir", h.Tafsir.Routes())
		})
		api.Mount("/audio", h.Audio.Routes())
		api.Mount("/search", h.Search.Routes())
		api.Mount("/bookmarks", h.Bookmark.Routes())
	})

	return r
}

type namedMiddleware struct {
	name    string
	handler func(http.Handler) http.Handler
}

// middlewareChain lists the global middleware, outermost first.
func middlewareChain(ctx context.Context, cfg *config.Config, log *slog.Logger) []namedMiddleware {
	return []namedMiddleware{
		{"request_id", middleware.RequestID()},
		{"client_ip", middleware.ClientIP(cfg.TrustedProxies)},
		{"access_log", middleware.StructuredLogger(log)},
		{"panic_recovery", middleware.PanicRecovery(log)},
		{"timeout", chimw.Timeout(constants.GlobalRequestTimeout)},
		{"rate_limit", middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)},
		{"cors", middleware.CORS(cfg.AllowedOrigins())},
		{"clean_path", chimw.CleanPath},
	}
}

// banner answers GET / in plain text for uptime probes that predate /health.
func banner(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set(constants.HeaderContentType, "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(constants.RootBanner))
}

// ListenAndServe blocks until the server stops. After Shutdown it returns
// [http.ErrServerClosed].
func (s *Server) ListenAndServe() error {
	s.log.Info("server_listening", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
