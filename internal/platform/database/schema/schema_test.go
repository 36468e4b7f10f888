// Copyright (c) 2026 Quran API. All rights reserved.

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msr7799/quran-api/internal/platform/database/schema"
)

func TestPathAndRef(t *testing.T) {
	assert.Equal(t, "verses.text.ar", schema.Path(schema.Surah.Verses, schema.VerseFields.Text, "ar"))
	assert.Equal(t, "$audio.id", schema.Ref(schema.Surah.Audio, schema.RecitationFields.ID))
	assert.Equal(t, "number", schema.Path(schema.Surah.Number))
}

func TestSurahKnownCoversLegacyFields(t *testing.T) {
	known := schema.Surah.Known()
	for _, field := range schema.Surah.LegacyEncoded() {
		assert.Contains(t, known, field)
	}
}

func TestBookmarkColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "surah_id", "verse_id", "user_id", "added_at"}, schema.Bookmark.Columns())
}

func TestBookmarkDocumentKeepsCamelCase(t *testing.T) {
	assert.Equal(t, []string{"_id", "surahId", "verseId", "userId", "addedAt"}, schema.BookmarkDocument.Columns())
}
