// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import "context"

// # Repository

// Repository defines every read over the surah collection.
//
// Aggregations that unwind audio or verses skip documents where that field is
// not an array. Deduplicating reads keep the first occurrence in
// (surah number, array position) order.
type Repository interface {
	// ListSummaries returns all surahs in storage order; no sort is applied.
	ListSummaries(ctx context.Context) ([]Summary, error)

	// FindByNumber returns apperr NotFound when no surah has that number.
	FindByNumber(ctx context.Context, number int) (*Surah, error)

	// FindByPage returns whole surahs having at least one verse on page, in
	// storage order.
	FindByPage(ctx context.Context, page int) ([]*Surah, error)

	// ListReciters deduplicates recitations by reciter id, sorted by id.
	// A non-empty nameQuery keeps reciters whose ar or en name contains it,
	// case-insensitively.
	ListReciters(ctx context.Context, nameQuery string) ([]ReciterSummary, error)

	// ListRewayat groups recitations by Arabic rewaya name, sorted by it.
	ListRewayat(ctx context.Context) ([]RewayaSummary, error)

	// ListReciterRecitations returns one entry per surah the reciter recorded,
	// sorted by surah number. An unknown reciter yields an empty slice.
	ListReciterRecitations(ctx context.Context, reciterID int) ([]ReciterRecitation, error)

	// SearchVerses matches verse text case-insensitively, sorts by
	// (surah, verse) and then keeps the first limit matches.
	SearchVerses(ctx context.Context, query string, limit int) ([]VerseMatch, error)

	// ListPageVerses projects the verses on page, sorted by (surah, verse).
	ListPageVerses(ctx context.Context, page int) ([]VerseMatch, error)

	// Navigation groups verses by juz with their distinct pages and surahs.
	Navigation(ctx context.Context) ([]JuzIndex, error)
}
