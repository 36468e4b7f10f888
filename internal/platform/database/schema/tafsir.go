// Copyright (c) 2026 Quran API. All rights reserved.

package schema

// TafsirCollection describes stored tafsir records.
type TafsirCollection struct {
	ID   string
	Sura string
	Aya  string
	Text string
}

// Tafsir holds the field names of a stored tafsir record.
var Tafsir = TafsirCollection{
	ID:   "id",
	Sura: "sura",
	Aya:  "aya",
	Text: "text",
}
