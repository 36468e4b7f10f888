// Copyright (c) 2026 Quran API. All rights reserved.

// Package schema is the single registry of stored field and column names.
//
// Stores and aggregation pipelines reference these values instead of
// string literals so a renamed field only changes in one place.
package schema

import "strings"

// SurahCollection describes the stored surah documents.
type SurahCollection struct {
	Number          string
	Name            string
	RevelationPlace string
	VersesCount     string
	WordsCount      string
	LettersCount    string
	Verses          string
	Audio           string
}

// Surah holds the field names of a stored surah document.
var Surah = SurahCollection{
	Number:          "number",
	Name:            "name",
	RevelationPlace: "revelation_place",
	VersesCount:     "verses_count",
	WordsCount:      "words_count",
	LettersCount:    "letters_count",
	Verses:          "verses",
	Audio:           "audio",
}

// LegacyEncoded lists fields older imports stored as JSON strings.
func (c SurahCollection) LegacyEncoded() []string {
	return []string{
		c.Name, c.RevelationPlace, c.Verses, c.Audio,
		c.Number, c.VersesCount, c.WordsCount, c.LettersCount,
	}
}

// Known lists every field the surah model maps explicitly.
// Anything else, including "_id", is carried through untouched.
func (c SurahCollection) Known() []string {
	return []string{
		c.Number, c.Name, c.RevelationPlace,
		c.VersesCount, c.WordsCount, c.LettersCount, c.Verses, c.Audio,
	}
}

// VerseFields are the keys of an embedded verse.
var VerseFields = struct {
	Number string
	Text   string
	Juz    string
	Page   string
	Sajda  string
}{
	Number: "number",
	Text:   "text",
	Juz:    "juz",
	Page:   "page",
	Sajda:  "sajda",
}

// RecitationFields are the keys of an embedded audio entry.
var RecitationFields = struct {
	ID      string
	Reciter string
	Rewaya  string
	Server  string
	Link    string
}{
	ID:      "id",
	Reciter: "reciter",
	Rewaya:  "rewaya",
	Server:  "server",
	Link:    "link",
}

// Path joins field names into a dotted document path.
func Path(parts ...string) string {
	return strings.Join(parts, ".")
}

// Ref returns the "$field.path" expression form used inside pipelines.
func Ref(parts ...string) string {
	return "$" + Path(parts...)
}
