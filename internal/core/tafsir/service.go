// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import (
	"context"
	"log/slog"

	"github.com/msr7799/quran-api/internal/platform/apperr"
)

// Service resolves tafsir lookups.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a tafsir [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
GetVerse returns the tafsir of one verse.

A missing record is not an error: the view carries [Placeholder] with
Available set to false. Only store failures are returned.
*/
func (service *Service) GetVerse(ctx context.Context, sura, aya int) (View, error) {
	view := View{SurahID: sura, VerseID: aya}

	record, err := service.repo.FindByVerse(ctx, sura, aya)
	switch {
	case apperr.IsNotFound(err):
		view.Text = Placeholder
		return view, nil
	case err != nil:
		return View{}, err
	}

	view.Text = record.Text
	view.Available = true
	return view, nil
}

// ListSurah returns the surah's tafsir sorted by aya, or NotFound when
// the surah has none.
func (service *Service) ListSurah(ctx context.Context, sura int) ([]Tafsir, error) {
	records, err := service.repo.ListBySurah(ctx, sura)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NotFoundMessage("No tafsir found for this surah")
	}
	return records, nil
}
