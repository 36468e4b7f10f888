// Copyright (c) 2026 Quran API. All rights reserved.

package surah_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/platform/fixture"
)

func TestFromDocument_LegacyStrings(t *testing.T) {
	doc := fixture.Sample().Surahs[3]
	require.IsType(t, "", doc["verses"])

	got := surah.FromDocument(doc, discardLogger())

	assert.Equal(t, 113, got.Number)
	assert.Equal(t, 5, got.VersesCount)
	assert.Equal(t, "The Daybreak", got.Name.En)
	assert.Equal(t, "meccan", got.RevelationPlace.En)
	assert.Len(t, got.Verses, 5)
	assert.Len(t, got.Audio, 2)
	assert.Empty(t, got.Unparsed)
}

func TestFromDocument_MalformedStringIsKept(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	doc := fixture.Sample().Surahs[4]
	original := doc["name"]

	got := surah.FromDocument(doc, logger)

	assert.Equal(t, 114, got.Number)
	assert.Equal(t, surah.Name{}, got.Name)
	assert.Equal(t, original, got.Unparsed["name"])
	assert.Len(t, got.Verses, 6, "other fields still decode")
	assert.Contains(t, logs.String(), "legacy_field_unparsed")
}

func TestFromDocument_PreservesUnknownFields(t *testing.T) {
	got := surah.FromDocument(fixture.Sample().Surahs[4], discardLogger())

	payload, err := json.Marshal(got)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, "legacy-import", out["source"])
	assert.IsType(t, "", out["name"], "undecodable field is returned as stored")
	assert.EqualValues(t, 114, out["number"])
	assert.Len(t, out["verses"], 6)
}

func TestFromDocument_DriverValues(t *testing.T) {
	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":              id,
		"number":           int32(112),
		"name":             bson.M{"ar": "الإخلاص", "en": "The Sincerity", "transliteration": "Al-Ikhlas"},
		"revelation_place": bson.M{"ar": "مكية", "en": "meccan"},
		"verses_count":     int64(1),
		"verses": bson.A{
			bson.M{"number": int32(1), "text": bson.M{"ar": "قُلْ هُوَ اللَّهُ أَحَدٌ", "en": "Say, He is Allah, [who is] One,"}, "juz": int32(30), "page": int32(604), "sajda": false},
		},
		"audio": bson.A{},
	}

	got := surah.FromDocument(doc, discardLogger())

	assert.Equal(t, 112, got.Number)
	assert.Equal(t, "Al-Ikhlas", got.Name.Transliteration)
	require.Len(t, got.Verses, 1)
	assert.Equal(t, 604, got.Verses[0].Page)
	assert.Empty(t, got.Audio)
	assert.Equal(t, id, got.Extra["_id"])

	payload, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(payload), id.Hex())
}

func TestFromDocument_WrongTypeGoesToUnparsed(t *testing.T) {
	stored := map[string]any{"total": 7.0}
	got := surah.FromDocument(map[string]any{"number": 1.0, "verses_count": stored}, discardLogger())

	assert.Equal(t, 1, got.Number)
	assert.Equal(t, 0, got.VersesCount)
	assert.Equal(t, stored, got.Unparsed["verses_count"])
}

func TestMarshalJSON_EmptyArrays(t *testing.T) {
	payload, err := json.Marshal(&surah.Surah{Number: 1})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, []any{}, out["verses"])
	assert.Equal(t, []any{}, out["audio"])
}
