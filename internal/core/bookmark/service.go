// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/internal/platform/validate"
)

const (
	msgMissingFields = "Please provide surahId, verseId and userId"
	msgDeleted       = "Bookmark deleted successfully"

	maxUserIDLen = 128
)

// Service validates and stores bookmarks.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a bookmark [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// List returns the bookmarks of userID, or of every user when it is empty.
func (service *Service) List(ctx context.Context, userID string) ([]Bookmark, error) {
	return service.repo.List(ctx, userID)
}

/*
Create stores a bookmark stamped with the current time.

Returns:
  - *Bookmark: the stored bookmark with its id
  - error: VALIDATION_ERROR when a field is missing or out of range
*/
func (service *Service) Create(ctx context.Context, input NewBookmark) (*Bookmark, error) {
	err := validate.Struct(&input,
		validation.Field(&input.SurahID, validation.Required),
		validation.Field(&input.VerseID, validation.Required),
		validation.Field(&input.UserID, validation.Required),
	)
	if appErr := apperr.As(err); appErr != nil && appErr.Code == apperr.CodeValidation {
		return nil, apperr.ValidationError(msgMissingFields, appErr.Details...)
	}
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(&input,
		validation.Field(&input.SurahID, validation.Min(1), validation.Max(constants.SurahCount)),
		validation.Field(&input.VerseID, validation.Min(1)),
		validation.Field(&input.UserID, validation.RuneLength(1, maxUserIDLen)),
	); err != nil {
		return nil, err
	}

	bookmark := &Bookmark{
		SurahID: input.SurahID,
		VerseID: input.VerseID,
		UserID:  input.UserID,
		AddedAt: service.now().UTC().Truncate(time.Millisecond),
	}
	if err := service.repo.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "bookmark_created",
		slog.String("bookmark_id", bookmark.ID),
		slog.Int("surah", bookmark.SurahID),
		slog.Int("verse", bookmark.VerseID),
	)
	return bookmark, nil
}

// Delete removes one bookmark by id.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "bookmark_deleted", slog.String("bookmark_id", id))
	return nil
}
