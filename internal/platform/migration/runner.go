// Copyright (c) 2026 Quran API. All rights reserved.

// Package migration brings the PostgreSQL bookmark table up to date with
// golang-migrate. MongoDB collections are schemaless and need none.
//
// The SQL ships inside the binary; MIGRATION_PATH points at a directory on
// disk instead, which is handy while writing a new migration.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embedded embed.FS

// ErrDirty means a previous run failed half-way and someone has to fix the
// schema and force the version by hand.
var ErrDirty = errors.New("migration: database is dirty")

// stepper is the part of [*migrate.Migrate] the upgrade flow needs.
type stepper interface {
	Version() (version uint, dirty bool, err error)
	Up() error
}

// RunUp applies every pending migration to the database at dsn, reading
// them from migrationsPath or, when that is empty, from the embedded set.
func RunUp(dsn, migrationsPath string, logger *slog.Logger) error {
	m, err := open(pgx5URL(dsn), migrationsPath)
	if err != nil {
		return fmt.Errorf("migration: open %s source: %w", sourceName(migrationsPath), err)
	}
	m.Log = slogAdapter{logger: logger}

	err = upgrade(m, logger.With(slog.String("source", sourceName(migrationsPath))))

	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		logger.Warn("migration_close_failed",
			slog.Any("source_error", sourceErr),
			slog.Any("db_error", dbErr),
		)
	}
	return err
}

func open(databaseURL, migrationsPath string) (*migrate.Migrate, error) {
	if migrationsPath != "" {
		return migrate.New("file://"+migrationsPath, databaseURL)
	}

	source, err := iofs.New(embedded, "sql")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", source, databaseURL)
}

// upgrade refuses to touch a dirty schema and treats "nothing to apply"
// as success.
func upgrade(m stepper, logger *slog.Logger) error {
	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirty, from)
	}

	logger.Info("migration_started", slog.Uint64("from_version", uint64(from)))

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date", slog.Uint64("version", uint64(from)))
			return nil
		}
		return fmt.Errorf("migration: apply: %w", err)
	}

	to, _, _ := m.Version()
	logger.Info("migration_finished",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)
	return nil
}

func sourceName(migrationsPath string) string {
	if migrationsPath == "" {
		return "embedded"
	}
	return migrationsPath
}

// pgx5URL rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the golang-migrate pgx/v5 driver registers. Other input is returned as is.
func pgx5URL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogAdapter sends golang-migrate's progress lines to slog at debug level.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Printf(format string, args ...any) {
	a.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (a slogAdapter) Verbose() bool { return false }
