// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import (
	"cmp"
	"context"
	"slices"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/pkg/slice"
	"github.com/msr7799/quran-api/pkg/textmatch"
)

// MemoryRepository implements [Repository] over an imported record set.
type MemoryRepository struct {
	records []Tafsir // sorted by (sura, aya)
}

// NewMemoryRepository copies and sorts records.
func NewMemoryRepository(records []Tafsir) *MemoryRepository {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Tafsir) int {
		return cmp.Or(cmp.Compare(a.Sura, b.Sura), cmp.Compare(a.Aya, b.Aya))
	})
	return &MemoryRepository{records: sorted}
}

func (repository *MemoryRepository) FindByVerse(_ context.Context, sura, aya int) (*Tafsir, error) {
	for _, record := range repository.records {
		if record.Sura == sura && record.Aya == aya {
			return &record, nil
		}
	}
	return nil, apperr.NotFound("Tafsir")
}

func (repository *MemoryRepository) ListBySurah(_ context.Context, sura int) ([]Tafsir, error) {
	return repository.filter(func(record Tafsir) bool { return record.Sura == sura }), nil
}

func (repository *MemoryRepository) Search(_ context.Context, query string, limit int) ([]Tafsir, error) {
	records := repository.filter(func(record Tafsir) bool { return textmatch.ContainsFold(record.Text, query) })
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (repository *MemoryRepository) filter(keep func(Tafsir) bool) []Tafsir {
	records := slice.Filter(repository.records, keep)
	if records == nil {
		records = []Tafsir{}
	}
	return records
}
