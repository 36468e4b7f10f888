// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"context"
	"log/slog"

	"github.com/msr7799/quran-api/internal/platform/cache"
)

// # Service Layer

// Service serves the surah documents themselves: listings, lookups by
// number and the page view.
type Service struct {
	repo   Repository
	cache  cache.Store
	logger *slog.Logger
}

// NewService constructs a [Service]. store may be nil to disable caching.
func NewService(repo Repository, store cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger,
	}
}

// PageView lists the verses on one printed page, grouped by surah.
type PageView struct {
	Page   int         `json:"page"`
	Surahs []PageSurah `json:"surahs"`
}

// PageSurah is one surah's share of a page.
type PageSurah struct {
	ID     int     `json:"id"`
	Name   Name    `json:"name"`
	Verses []Verse `json:"verses"`
}

// ListSurahs returns every surah summary in storage order.
func (service *Service) ListSurahs(ctx context.Context) ([]Summary, error) {
	return cache.Load(ctx, service.cache, "surahs", service.repo.ListSummaries)
}

// GetSurah returns NotFound when no surah has that number.
func (service *Service) GetSurah(ctx context.Context, number int) (*Surah, error) {
	return service.repo.FindByNumber(ctx, number)
}

/*
GetPage collects the verses printed on page.

Surahs appear in storage order and each keeps only its verses on that page,
in verse order. A page with no verses yields an empty surah list.
*/
func (service *Service) GetPage(ctx context.Context, page int) (*PageView, error) {
	surahs, err := service.repo.FindByPage(ctx, page)
	if err != nil {
		return nil, err
	}

	view := &PageView{Page: page, Surahs: make([]PageSurah, 0, len(surahs))}
	for _, surah := range surahs {
		view.Surahs = append(view.Surahs, PageSurah{
			ID:     surah.Number,
			Name:   surah.Name,
			Verses: surah.VersesOnPage(page),
		})
	}
	return view, nil
}

// GetAudio returns the surah's recitations as stored.
func (service *Service) GetAudio(ctx context.Context, number int) ([]Recitation, error) {
	surah, err := service.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if surah.Audio == nil {
		return []Recitation{}, nil
	}
	return surah.Audio, nil
}
