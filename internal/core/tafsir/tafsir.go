// Copyright (c) 2026 Quran API. All rights reserved.

// Package tafsir serves verse exegesis from its own collection, keyed by
// (sura, aya).
//
// # Not-found semantics
//
// The two lookups treat absence differently on purpose. A verse without
// tafsir is ordinary data and yields a placeholder [View]. A surah without
// any tafsir is reported as NotFound.
package tafsir

// Placeholder is the text served for a verse that has no tafsir.
const Placeholder = "تفسير غير متوفر لهذه الآية"

// Tafsir is one stored exegesis record.
type Tafsir struct {
	ID   int    `bson:"id" json:"id"`
	Sura int    `bson:"sura" json:"sura"`
	Aya  int    `bson:"aya" json:"aya"`
	Text string `bson:"text" json:"text"`
}

// View is the single-verse response.
type View struct {
	SurahID int    `json:"surahId"`
	VerseID int    `json:"verseId"`
	Text    string `json:"text"`

	// Available is false when Text is the placeholder.
	Available bool `json:"-"`
}
