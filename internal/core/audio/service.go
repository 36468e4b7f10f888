// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package audio serves reciter and rewaya views built by unwinding the audio
array embedded in every surah.

Whole-collection reads (reciters, rewayat, navigation) go through the
optional read-through cache. Reads scoped to one reciter or surah do not.
*/
package audio

import (
	"context"
	"log/slog"

	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/cache"
	"github.com/msr7799/quran-api/internal/platform/ctxutil"
	"github.com/msr7799/quran-api/pkg/slice"
	"github.com/msr7799/quran-api/pkg/textmatch"
)

// Client-facing not-found messages.
const (
	msgNoReciterAudio = "لا توجد تلاوات للقارئ المحدد"
	msgSurahMissing   = "السورة غير موجودة"
	msgNoRewayaAudio  = "لا توجد تلاوات بهذه الرواية للسورة المحددة"
)

// Cache keys.
const (
	keyReciters   = "audio:reciters"
	keyRewayat    = "audio:rewayat"
	keyNavigation = "audio:navigation"
)

// Service implements the audio read operations.
type Service struct {
	surahs surah.Repository
	cache  cache.Store
	logger *slog.Logger
}

// NewService constructs an audio [Service]. store may be nil.
func NewService(surahs surah.Repository, store cache.Store, logger *slog.Logger) *Service {
	return &Service{surahs: surahs, cache: store, logger: logger}
}

// SurahRecitations is the audio of one surah filtered by rewaya.
type SurahRecitations struct {
	Surah surah.SurahRef     `json:"surah"`
	Audio []surah.Recitation `json:"audio"`
}

// ListReciters returns every reciter once, sorted by id.
func (service *Service) ListReciters(ctx context.Context) ([]surah.ReciterSummary, error) {
	return cache.Load(ctx, service.cache, keyReciters, func(ctx context.Context) ([]surah.ReciterSummary, error) {
		return service.surahs.ListReciters(ctx, "")
	})
}

// ListRewayat returns every rewaya with its recitation count.
func (service *Service) ListRewayat(ctx context.Context) ([]surah.RewayaSummary, error) {
	return cache.Load(ctx, service.cache, keyRewayat, service.surahs.ListRewayat)
}

// Navigation returns the juz index.
func (service *Service) Navigation(ctx context.Context) ([]surah.JuzIndex, error) {
	return cache.Load(ctx, service.cache, keyNavigation, service.surahs.Navigation)
}

// SearchReciters matches reciter names case-insensitively.
// No match is an empty list, not an error.
func (service *Service) SearchReciters(ctx context.Context, query string) ([]surah.ReciterSummary, error) {
	return service.surahs.ListReciters(ctx, query)
}

// ReciterRecitations returns NotFound when the reciter recorded nothing.
func (service *Service) ReciterRecitations(ctx context.Context, reciterID int) ([]surah.ReciterRecitation, error) {
	recitations, err := service.surahs.ListReciterRecitations(ctx, reciterID)
	if err != nil {
		return nil, err
	}
	if len(recitations) == 0 {
		return nil, apperr.NotFoundMessage(msgNoReciterAudio)
	}
	return recitations, nil
}

/*
SurahByRewaya filters one surah's recitations by rewaya.

A recitation matches when rewaya occurs in its Arabic or English rewaya name.
The comparison is case-sensitive.

Returns:
  - *SurahRecitations: The surah reference and the matching recitations
  - error: NotFound when the surah is missing or nothing matches
*/
func (service *Service) SurahByRewaya(ctx context.Context, number int, rewaya string) (*SurahRecitations, error) {
	doc, err := service.surahs.FindByNumber(ctx, number)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFoundMessage(msgSurahMissing)
	}
	if err != nil {
		return nil, err
	}

	matching := slice.Filter(doc.Audio, func(recitation surah.Recitation) bool {
		return textmatch.AnyContains(rewaya, recitation.Rewaya.Ar, recitation.Rewaya.En)
	})
	if len(matching) == 0 {
		ctxutil.GetLogger(ctx).Debug("rewaya_no_match",
			slog.Int("surah", number),
			slog.String("rewaya", rewaya),
		)
		return nil, apperr.NotFoundMessage(msgNoRewayaAudio)
	}

	return &SurahRecitations{
		Surah: surah.SurahRef{Number: doc.Number, Name: doc.Name},
		Audio: matching,
	}, nil
}
