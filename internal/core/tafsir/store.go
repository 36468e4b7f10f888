// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import "context"

// Repository reads the tafsir collection.
type Repository interface {
	// FindByVerse returns apperr NotFound when the verse has no record.
	FindByVerse(ctx context.Context, sura, aya int) (*Tafsir, error)

	// ListBySurah returns the surah's records sorted by aya; possibly empty.
	ListBySurah(ctx context.Context, sura int) ([]Tafsir, error)

	// Search matches text case-insensitively, sorts by (sura, aya) and
	// keeps the first limit records.
	Search(ctx context.Context, query string, limit int) ([]Tafsir, error)
}
