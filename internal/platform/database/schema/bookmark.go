// Copyright (c) 2026 Quran API. All rights reserved.

package schema

// BookmarkTable names the bookmark columns in PostgreSQL and the matching
// fields of the Mongo collection.
type BookmarkTable struct {
	Table   string
	ID      string
	SurahID string
	VerseID string
	UserID  string
	AddedAt string
}

// Bookmark is the PostgreSQL table.
var Bookmark = BookmarkTable{
	Table:   "bookmarks",
	ID:      "id",
	SurahID: "surah_id",
	VerseID: "verse_id",
	UserID:  "user_id",
	AddedAt: "added_at",
}

// BookmarkDocument is the Mongo collection, which keeps the camelCase
// field names of the original documents.
var BookmarkDocument = BookmarkTable{
	Table:   "bookmarks",
	ID:      "_id",
	SurahID: "surahId",
	VerseID: "verseId",
	UserID:  "userId",
	AddedAt: "addedAt",
}

// Columns returns the column list in insert order.
func (t BookmarkTable) Columns() []string {
	return []string{t.ID, t.SurahID, t.VerseID, t.UserID, t.AddedAt}
}
