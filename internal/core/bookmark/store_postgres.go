// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/database/schema"
	"github.com/msr7799/quran-api/internal/platform/dberr"
	"github.com/msr7799/quran-api/pkg/uuid"
)

// PostgresRepository stores bookmarks in the table created by the
// bookmark migrations.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	selectBookmarks = fmt.Sprintf(`SELECT %s::text, %s, %s, %s, %s FROM %s`,
		schema.Bookmark.ID, schema.Bookmark.SurahID, schema.Bookmark.VerseID,
		schema.Bookmark.UserID, schema.Bookmark.AddedAt, schema.Bookmark.Table)

	orderNewestFirst = fmt.Sprintf(` ORDER BY %s DESC, %s DESC`, schema.Bookmark.AddedAt, schema.Bookmark.ID)

	insertBookmark = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.Bookmark.Table, strings.Join(schema.Bookmark.Columns(), ", "))

	deleteBookmark = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Bookmark.Table, schema.Bookmark.ID)
)

func (repository *PostgresRepository) List(ctx context.Context, userID string) ([]Bookmark, error) {
	query, args := selectBookmarks+orderNewestFirst, []any{}
	if userID != "" {
		query = selectBookmarks + fmt.Sprintf(` WHERE %s = $1`, schema.Bookmark.UserID) + orderNewestFirst
		args = append(args, userID)
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Bookmark", "list_bookmarks")
	}

	bookmarks, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Bookmark])
	if err != nil {
		return nil, dberr.Wrap(err, "Bookmark", "scan_bookmarks")
	}
	for i := range bookmarks {
		bookmarks[i].AddedAt = bookmarks[i].AddedAt.UTC()
	}
	return bookmarks, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, bookmark *Bookmark) error {
	id := uuid.New()

	_, err := repository.db.Exec(ctx, insertBookmark,
		id, bookmark.SurahID, bookmark.VerseID, bookmark.UserID, bookmark.AddedAt)
	if err != nil {
		return dberr.Wrap(err, "Bookmark", "create_bookmark")
	}

	bookmark.ID = id
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	if !uuid.Valid(id) {
		return ErrInvalidID
	}

	tag, err := repository.db.Exec(ctx, deleteBookmark, id)
	if err != nil {
		return dberr.Wrap(err, "Bookmark", "delete_bookmark")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}
	return nil
}
