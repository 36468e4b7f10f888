// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"cmp"
	"context"
	"slices"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/pkg/slice"
	"github.com/msr7799/quran-api/pkg/textmatch"
)

// MemoryRepository implements [Repository] over an imported dataset.
//
// The dataset is never mutated after construction, so reads need no locking.
type MemoryRepository struct {
	surahs   []*Surah // storage order
	byNumber []*Surah // (number, storage position) order
}

// NewMemoryRepository serves surahs, given in storage order.
func NewMemoryRepository(surahs []*Surah) *MemoryRepository {
	byNumber := slices.Clone(surahs)
	slices.SortStableFunc(byNumber, func(a, b *Surah) int { return cmp.Compare(a.Number, b.Number) })

	return &MemoryRepository{surahs: surahs, byNumber: byNumber}
}

// # Document reads

func (repository *MemoryRepository) ListSummaries(_ context.Context) ([]Summary, error) {
	summaries := slice.Map(repository.surahs, func(surah *Surah) Summary { return surah.Summary() })
	if summaries == nil {
		summaries = []Summary{}
	}
	return summaries, nil
}

func (repository *MemoryRepository) FindByNumber(_ context.Context, number int) (*Surah, error) {
	for _, surah := range repository.surahs {
		if surah.Number == number {
			return surah, nil
		}
	}
	return nil, apperr.NotFound("Surah")
}

func (repository *MemoryRepository) FindByPage(_ context.Context, page int) ([]*Surah, error) {
	surahs := make([]*Surah, 0)
	for _, surah := range repository.surahs {
		if surah.HasPage(page) {
			surahs = append(surahs, surah)
		}
	}
	return surahs, nil
}

// # Aggregations

// recitationPair is one unwound audio entry with its surah.
type recitationPair struct {
	surah      *Surah
	recitation Recitation
}

// unwindAudio yields audio entries in (surah number, array position) order.
func (repository *MemoryRepository) unwindAudio() []recitationPair {
	var pairs []recitationPair
	for _, surah := range repository.byNumber {
		for _, recitation := range surah.Audio {
			pairs = append(pairs, recitationPair{surah: surah, recitation: recitation})
		}
	}
	return pairs
}

func (repository *MemoryRepository) ListReciters(_ context.Context, nameQuery string) ([]ReciterSummary, error) {
	pairs := repository.unwindAudio()
	if nameQuery != "" {
		pairs = slice.Filter(pairs, func(pair recitationPair) bool {
			return textmatch.AnyContainsFold(nameQuery, pair.recitation.Reciter.Ar, pair.recitation.Reciter.En)
		})
	}

	firstSeen := slice.UniqueBy(pairs, func(pair recitationPair) int { return pair.recitation.ID })
	reciters := make([]ReciterSummary, 0, len(firstSeen))
	for _, pair := range firstSeen {
		reciters = append(reciters, ReciterSummary{
			ID:      pair.recitation.ID,
			Reciter: pair.recitation.Reciter,
			Rewaya:  pair.recitation.Rewaya,
			Server:  pair.recitation.Server,
		})
	}

	slices.SortFunc(reciters, func(a, b ReciterSummary) int { return cmp.Compare(a.ID, b.ID) })
	return reciters, nil
}

func (repository *MemoryRepository) ListRewayat(_ context.Context) ([]RewayaSummary, error) {
	pairs := repository.unwindAudio()
	keyOf := func(pair recitationPair) string { return pair.recitation.Rewaya.Ar }

	_, counts := slice.CountBy(pairs, keyOf)
	firstSeen := slice.UniqueBy(pairs, keyOf)

	rewayat := make([]RewayaSummary, 0, len(firstSeen))
	for _, pair := range firstSeen {
		rewayat = append(rewayat, RewayaSummary{
			Ar:    pair.recitation.Rewaya.Ar,
			En:    pair.recitation.Rewaya.En,
			Count: counts[pair.recitation.Rewaya.Ar],
		})
	}

	// Byte-wise, like MongoDB's default string ordering.
	slices.SortFunc(rewayat, func(a, b RewayaSummary) int { return cmp.Compare(a.Ar, b.Ar) })
	return rewayat, nil
}

func (repository *MemoryRepository) ListReciterRecitations(_ context.Context, reciterID int) ([]ReciterRecitation, error) {
	recitations := make([]ReciterRecitation, 0)
	for _, pair := range repository.unwindAudio() {
		if pair.recitation.ID != reciterID {
			continue
		}
		recitations = append(recitations, ReciterRecitation{
			SurahNumber: pair.surah.Number,
			SurahName:   pair.surah.Name,
			Reciter:     pair.recitation.Reciter,
			Rewaya:      pair.recitation.Rewaya,
			AudioLink:   pair.recitation.Link,
		})
	}
	return recitations, nil
}

func (repository *MemoryRepository) SearchVerses(_ context.Context, query string, limit int) ([]VerseMatch, error) {
	matches := repository.matchVerses(func(verse Verse) bool {
		return textmatch.AnyContainsFold(query, verse.Text.Ar, verse.Text.En)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (repository *MemoryRepository) ListPageVerses(_ context.Context, page int) ([]VerseMatch, error) {
	return repository.matchVerses(func(verse Verse) bool { return verse.Page == page }), nil
}

// matchVerses unwinds every verse, filters and sorts by (surah, verse).
func (repository *MemoryRepository) matchVerses(keep func(Verse) bool) []VerseMatch {
	matches := make([]VerseMatch, 0)
	for _, surah := range repository.surahs {
		for _, verse := range surah.Verses {
			if !keep(verse) {
				continue
			}
			matches = append(matches, VerseMatch{
				SurahNumber: surah.Number,
				SurahName:   surah.Name,
				VerseNumber: verse.Number,
				VerseText:   verse.Text,
				Page:        verse.Page,
				Juz:         verse.Juz,
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b VerseMatch) int {
		return cmp.Or(cmp.Compare(a.SurahNumber, b.SurahNumber), cmp.Compare(a.VerseNumber, b.VerseNumber))
	})
	return matches
}

func (repository *MemoryRepository) Navigation(_ context.Context) ([]JuzIndex, error) {
	type juzSets struct {
		pages  []int
		surahs []SurahRef
	}

	groups := make(map[int]*juzSets)
	for _, surah := range repository.surahs {
		for _, verse := range surah.Verses {
			group, ok := groups[verse.Juz]
			if !ok {
				group = &juzSets{}
				groups[verse.Juz] = group
			}
			group.pages = append(group.pages, verse.Page)
			group.surahs = append(group.surahs, SurahRef{Number: surah.Number, Name: surah.Name})
		}
	}

	index := make([]JuzIndex, 0, len(groups))
	for juz, group := range groups {
		index = append(index, newJuzIndex(juz, group.pages, group.surahs))
	}
	slices.SortFunc(index, func(a, b JuzIndex) int { return cmp.Compare(a.JuzNumber, b.JuzNumber) })
	return index, nil
}
