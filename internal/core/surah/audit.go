// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"fmt"
	"log/slog"
)

// Finding kinds reported by [Audit].
const (
	FindingVersesCount    = "verses_count_mismatch"
	FindingVerseNumbering = "verse_numbering"
)

// Finding is one data-quality problem in an imported surah.
type Finding struct {
	Surah  int
	Kind   string
	Detail string
}

/*
Audit checks the redundant counts and verse order of an imported surah.

verses_count is denormalised metadata; it must equal len(verses). Verse
numbers must run 1..n with no gaps. Neither problem prevents serving the
surah.
*/
func Audit(surah *Surah) []Finding {
	var findings []Finding

	if surah.VersesCount != len(surah.Verses) {
		findings = append(findings, Finding{
			Surah:  surah.Number,
			Kind:   FindingVersesCount,
			Detail: fmt.Sprintf("verses_count=%d but %d verses stored", surah.VersesCount, len(surah.Verses)),
		})
	}

	for i, verse := range surah.Verses {
		if verse.Number != i+1 {
			findings = append(findings, Finding{
				Surah:  surah.Number,
				Kind:   FindingVerseNumbering,
				Detail: fmt.Sprintf("position %d holds verse %d", i+1, verse.Number),
			})
			// One report per surah; later positions are shifted too.
			break
		}
	}

	return findings
}

// LogAudit audits every surah and logs each finding at WARN.
// It returns the number of findings.
func LogAudit(logger *slog.Logger, surahs []*Surah) int {
	total := 0
	for _, surah := range surahs {
		for _, finding := range Audit(surah) {
			total++
			logger.Warn("surah_data_quality",
				slog.Int("surah", finding.Surah),
				slog.String("kind", finding.Kind),
				slog.String("detail", finding.Detail),
			)
		}
	}
	return total
}
