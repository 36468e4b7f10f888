// Copyright (c) 2026 Quran API. All rights reserved.

// Command api is the entry point for the Quran API HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env).
//  3. Open the selected stores: MongoDB, or the in-memory dataset.
//  4. Open PostgreSQL and run migrations when bookmarks live there.
//  5. Connect to Redis when the read-through cache is enabled.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/msr7799/quran-api/internal/api"
	"github.com/msr7799/quran-api/internal/core/audio"
	"github.com/msr7799/quran-api/internal/core/bookmark"
	"github.com/msr7799/quran-api/internal/core/search"
	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/core/tafsir"
	"github.com/msr7799/quran-api/internal/platform/cache"
	"github.com/msr7799/quran-api/internal/platform/config"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/fixture"
	"github.com/msr7799/quran-api/internal/platform/migration"
	mongostore "github.com/msr7799/quran-api/internal/platform/mongo"
	pgstore "github.com/msr7799/quran-api/internal/platform/postgres"
	redisstore "github.com/msr7799/quran-api/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("bookmark_store", cfg.BookmarkStore),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	// Root context for background workers; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Bounded so misconfiguration is caught quickly rather than hanging.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	var checks []api.Check

	// ── 3. Document store ─────────────────────────────────────────────────
	var mongoDB *mongodriver.Database
	if cfg.UsesMongo() {
		client, err := mongostore.NewClient(startupCtx, cfg.MongoURI, log)
		must(log, err, "connect to mongo")
		defer func() {
			log.Info("mongo_closing")
			if cerr := mongostore.Disconnect(client, 5*time.Second); cerr != nil {
				log.Error("mongo_close_failed", slog.Any("error", cerr))
			}
		}()

		mongoDB = client.Database(cfg.MongoDatabase)
		checks = append(checks, api.Check{Name: "mongo", Ping: func(ctx context.Context) error {
			return mongostore.Ping(ctx, client)
		}})
	}

	var (
		surahRepo  surah.Repository
		tafsirRepo tafsir.Repository
	)
	switch cfg.StoreDriver {
	case config.DriverMongo:
		surahRepo = surah.NewMongoRepository(mongoDB, cfg.SurahCollection, log)
		tafsirRepo = tafsir.NewMongoRepository(mongoDB, cfg.TafsirCollection)
	default:
		if cfg.FixturePath == "" && !cfg.IsDevelopment() {
			log.Warn("embedded_sample_dataset_in_use", slog.String("environment", cfg.Environment))
		}
		surahRepo, tafsirRepo, err = openMemoryStores(cfg.FixturePath, log)
		must(log, err, "load dataset")
	}

	// ── 4. Bookmark store ─────────────────────────────────────────────────
	var bookmarkRepo bookmark.Repository
	switch cfg.BookmarkStore {
	case config.DriverMongo:
		bookmarkRepo = bookmark.NewMongoRepository(mongoDB, cfg.BookmarkCollection)
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("postgres_closing")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		bookmarkRepo = bookmark.NewPostgresRepository(pool)
		checks = append(checks, api.Check{Name: "postgres", Ping: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}})
	default:
		bookmarkRepo = bookmark.NewMemoryRepository()
	}

	// ── 5. Read-through cache ─────────────────────────────────────────────
	// A nil interface (not a typed nil) disables caching in the services.
	var cacheStore cache.Store
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("redis_closing")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		cacheStore = redisstore.NewCache(rdb, cfg.CacheTTL)
		checks = append(checks, api.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}})
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Surah:     surah.NewHandler(surah.NewService(surahRepo, cacheStore, log)),
		Tafsir:    tafsir.NewHandler(tafsir.NewService(tafsirRepo, log)),
		Audio:     audio.NewHandler(audio.NewService(surahRepo, cacheStore, log)),
		Search:    search.NewHandler(search.NewService(surahRepo, tafsirRepo, log)),
		Bookmark:  bookmark.NewHandler(bookmark.NewService(bookmarkRepo, log)),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// openMemoryStores imports a dataset file, or the embedded sample when path
// is empty. Data-quality findings are logged during the import.
func openMemoryStores(path string, log *slog.Logger) (*surah.MemoryRepository, *tafsir.MemoryRepository, error) {
	dataset := fixture.Sample()
	if path != "" {
		loaded, err := fixture.Load(path)
		if err != nil {
			return nil, nil, err
		}
		dataset = loaded
	}

	var records []tafsir.Tafsir
	if err := dataset.DecodeTafsir(&records); err != nil {
		return nil, nil, err
	}

	surahs := surah.FromDocuments(dataset.Surahs, log)
	log.Info("dataset_loaded",
		slog.String("source", cmp.Or(path, "embedded sample")),
		slog.Int("surahs", len(surahs)),
		slog.Int("tafsir", len(records)),
	)

	return surah.NewMemoryRepository(surahs), tafsir.NewMemoryRepository(records), nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
