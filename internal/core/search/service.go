// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package search runs free-text and page searches across verses and tafsir.

Queries are matched as literals, case-insensitively. Every result list is
sorted by (surah, verse) before it is truncated.
*/
package search

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/core/tafsir"
	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/constants"
	"github.com/msr7799/quran-api/pkg/slice"
)

// Result type literals of the combined search.
const (
	TypeVerse  = "verse"
	TypeTafsir = "tafsir"
)

const msgEmptyPage = "الصفحة غير موجودة أو لا تحتوي على آيات"

// Service implements the search operations.
type Service struct {
	verses surah.Repository
	tafsir tafsir.Repository
	logger *slog.Logger
}

// NewService constructs a search [Service].
func NewService(verses surah.Repository, tafsirs tafsir.Repository, logger *slog.Logger) *Service {
	return &Service{verses: verses, tafsir: tafsirs, logger: logger}
}

// VerseHit is a verse in the combined search.
type VerseHit struct {
	Type string `json:"type"`
	surah.VerseMatch
}

// TafsirHit is a tafsir record in the combined search.
type TafsirHit struct {
	Type        string `json:"type"`
	SurahNumber int    `json:"surah_number"`
	VerseNumber int    `json:"verse_number"`
	Text        string `json:"text"`
}

// Combined is the response of [Service.All].
type Combined struct {
	Query         string      `json:"query"`
	QuranResults  []VerseHit  `json:"quran_results"`
	TafsirResults []TafsirHit `json:"tafsir_results"`
}

// PageResult lists the verses of one page with the juz it belongs to.
type PageResult struct {
	PageNumber int                `json:"page_number"`
	Juz        int                `json:"juz"`
	Verses     []surah.VerseMatch `json:"verses"`
}

// Quran returns at most [constants.VerseSearchLimit] verses.
func (service *Service) Quran(ctx context.Context, query string) ([]surah.VerseMatch, error) {
	return service.verses.SearchVerses(ctx, query, constants.VerseSearchLimit)
}

// Tafsir returns at most [constants.TafsirSearchLimit] records.
func (service *Service) Tafsir(ctx context.Context, query string) ([]tafsir.Tafsir, error) {
	return service.tafsir.Search(ctx, query, constants.TafsirSearchLimit)
}

/*
All searches verses and tafsir concurrently.

Verses are capped at [constants.CombinedVerseLimit] and tafsir at
[constants.CombinedTafsirLimit]. Either failure fails the whole search.
*/
func (service *Service) All(ctx context.Context, query string) (*Combined, error) {
	var (
		verses  []surah.VerseMatch
		records []tafsir.Tafsir
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		verses, err = service.verses.SearchVerses(groupCtx, query, constants.CombinedVerseLimit)
		return err
	})
	group.Go(func() error {
		var err error
		records, err = service.tafsir.Search(groupCtx, query, constants.CombinedTafsirLimit)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	combined := &Combined{
		Query: query,
		QuranResults: slice.Map(verses, func(match surah.VerseMatch) VerseHit {
			return VerseHit{Type: TypeVerse, VerseMatch: match}
		}),
		TafsirResults: slice.Map(records, func(record tafsir.Tafsir) TafsirHit {
			return TafsirHit{Type: TypeTafsir, SurahNumber: record.Sura, VerseNumber: record.Aya, Text: record.Text}
		}),
	}
	if combined.QuranResults == nil {
		combined.QuranResults = []VerseHit{}
	}
	if combined.TafsirResults == nil {
		combined.TafsirResults = []TafsirHit{}
	}
	return combined, nil
}

// Page returns NotFound when no verse is printed on page.
func (service *Service) Page(ctx context.Context, page int) (*PageResult, error) {
	verses, err := service.verses.ListPageVerses(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, apperr.NotFoundMessage(msgEmptyPage)
	}

	return &PageResult{PageNumber: page, Juz: verses[0].Juz, Verses: verses}, nil
}
