// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package surah owns the Surah aggregate: its embedded verses and recitations,
the normalisation of legacy documents, and every read that unwinds those
embedded arrays.

# Read model

Surah documents are bulk-imported and read-only while the server runs. The
[Repository] exposes both direct document lookups and the aggregations over
embedded arrays (reciter and rewaya deduplication, verse search, the juz
navigation index). The audio and search packages build on the same
repository.
*/
package surah

// # Shared value types

// Name is the localized name of a surah.
type Name struct {
	Ar              string `bson:"ar" json:"ar"`
	En              string `bson:"en" json:"en"`
	Transliteration string `bson:"transliteration,omitempty" json:"transliteration,omitempty"`
}

// Localized is an Arabic/English text pair.
type Localized struct {
	Ar string `bson:"ar" json:"ar"`
	En string `bson:"en" json:"en"`
}

// # Aggregate

// Verse is owned by a [Surah]; its position in Surah.Verses is canonical.
type Verse struct {
	Number int       `bson:"number" json:"number"`
	Text   Localized `bson:"text" json:"text"`
	Juz    int       `bson:"juz" json:"juz"`
	Page   int       `bson:"page" json:"page"`
	Sajda  bool      `bson:"sajda" json:"sajda"`
}

// Recitation is one reciter's audio for a surah.
//
// ID identifies the reciter and is assumed stable across surahs.
type Recitation struct {
	ID      int       `bson:"id" json:"id"`
	Reciter Localized `bson:"reciter" json:"reciter"`
	Rewaya  Localized `bson:"rewaya" json:"rewaya"`
	Server  string    `bson:"server" json:"server"`
	Link    string    `bson:"link" json:"link"`
}

// Surah is the aggregate root.
//
// Documents are not validated strictly. Fields the model does not know are
// kept in Extra, and known fields that could not be decoded are kept in their
// stored form in Unparsed. Both are written back out by MarshalJSON.
type Surah struct {
	Number          int
	Name            Name
	RevelationPlace Localized
	VersesCount     int
	WordsCount      int
	LettersCount    int
	Verses          []Verse
	Audio           []Recitation

	Extra    map[string]any
	Unparsed map[string]any
}

// Summary is the listing projection of a [Surah].
type Summary struct {
	Number          int       `json:"number"`
	Name            Name      `json:"name"`
	VersesCount     int       `json:"verses_count"`
	RevelationPlace Localized `json:"revelation_place"`
}

// Summary projects the surah for listings.
func (surah *Surah) Summary() Summary {
	return Summary{
		Number:          surah.Number,
		Name:            surah.Name,
		VersesCount:     surah.VersesCount,
		RevelationPlace: surah.RevelationPlace,
	}
}

// VersesOnPage returns the verses printed on page, in verse order.
func (surah *Surah) VersesOnPage(page int) []Verse {
	verses := make([]Verse, 0)
	for _, verse := range surah.Verses {
		if verse.Page == page {
			verses = append(verses, verse)
		}
	}
	return verses
}

// HasPage reports whether any verse of the surah is on page.
func (surah *Surah) HasPage(page int) bool {
	for _, verse := range surah.Verses {
		if verse.Page == page {
			return true
		}
	}
	return false
}

// # Aggregation results

// ReciterSummary is one deduplicated reciter.
type ReciterSummary struct {
	ID      int       `bson:"_id" json:"id"`
	Reciter Localized `bson:"reciter" json:"reciter"`
	Rewaya  Localized `bson:"rewaya" json:"rewaya"`
	Server  string    `bson:"server" json:"server"`
}

// RewayaSummary counts the recitations sharing one rewaya.
type RewayaSummary struct {
	Ar    string `bson:"rewaya_ar" json:"rewaya_ar"`
	En    string `bson:"rewaya_en" json:"rewaya_en"`
	Count int    `bson:"count" json:"count"`
}

// ReciterRecitation is one surah recorded by a reciter.
type ReciterRecitation struct {
	SurahNumber int       `json:"surah_number"`
	SurahName   Name      `json:"surah_name"`
	Reciter     Localized `json:"reciter"`
	Rewaya      Localized `json:"rewaya"`
	AudioLink   string    `json:"audio_link"`
}

// VerseMatch is a verse projected with its surah.
type VerseMatch struct {
	SurahNumber int       `json:"surah_number"`
	SurahName   Name      `json:"surah_name"`
	VerseNumber int       `json:"verse_number"`
	VerseText   Localized `json:"verse_text"`
	Page        int       `json:"page"`
	Juz         int       `json:"juz"`
}

// SurahRef is a surah number with its name.
type SurahRef struct {
	Number int  `json:"number"`
	Name   Name `json:"name"`
}

// JuzIndex lists the pages and surahs a juz touches.
type JuzIndex struct {
	JuzNumber int        `json:"juz_number"`
	Pages     []int      `json:"pages"`
	Surahs    []SurahRef `json:"surahs"`
}
