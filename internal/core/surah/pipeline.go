// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msr7799/quran-api/internal/platform/database/schema"
)

// # Aggregation pipelines
//
// Builders are pure so their stage order can be tested without a server.

// audioIndex is the field $unwind writes the array position into.
const audioIndex = "audio_index"

var (
	surahFields = schema.Surah
	verseFields = schema.VerseFields
	audioFields = schema.RecitationFields
)

// containsFold matches query literally and case-insensitively, like a
// $regex built from an escaped pattern with the "i" option.
func containsFold(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

// arrayOnly skips documents where field is missing or stored as a string.
func arrayOnly(field string) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{{Key: field, Value: bson.D{{Key: "$type", Value: "array"}}}}}}
}

// unwindAudio unwinds audio and records each entry's array position.
func unwindAudio() bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: schema.Ref(surahFields.Audio)},
		{Key: "includeArrayIndex", Value: audioIndex},
	}}}
}

// firstSeenOrder fixes the order $first observes inside $group.
func firstSeenOrder() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{
		{Key: surahFields.Number, Value: 1},
		{Key: audioIndex, Value: 1},
	}}}
}

/*
reciterPipeline deduplicates recitations by reciter id.

	$match audio is array → $unwind audio (with index) → [$match name]
	→ $sort number, index → $group by audio.id with $first → $sort _id
*/
func reciterPipeline(nameQuery string) mongo.Pipeline {
	pipeline := mongo.Pipeline{arrayOnly(surahFields.Audio), unwindAudio()}

	if nameQuery != "" {
		pattern := containsFold(nameQuery)
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: schema.Path(surahFields.Audio, audioFields.Reciter, "ar"), Value: pattern}},
			bson.D{{Key: schema.Path(surahFields.Audio, audioFields.Reciter, "en"), Value: pattern}},
		}}}}})
	}

	return append(pipeline,
		firstSeenOrder(),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: schema.Ref(surahFields.Audio, audioFields.ID)},
			{Key: "reciter", Value: bson.D{{Key: "$first", Value: schema.Ref(surahFields.Audio, audioFields.Reciter)}}},
			{Key: "rewaya", Value: bson.D{{Key: "$first", Value: schema.Ref(surahFields.Audio, audioFields.Rewaya)}}},
			{Key: "server", Value: bson.D{{Key: "$first", Value: schema.Ref(surahFields.Audio, audioFields.Server)}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)
}

// rewayatPipeline groups recitations by Arabic rewaya name and counts them.
func rewayatPipeline() mongo.Pipeline {
	rewayaAr := schema.Ref(surahFields.Audio, audioFields.Rewaya, "ar")

	return mongo.Pipeline{
		arrayOnly(surahFields.Audio),
		unwindAudio(),
		firstSeenOrder(),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: rewayaAr},
			{Key: "rewaya_ar", Value: bson.D{{Key: "$first", Value: rewayaAr}}},
			{Key: "rewaya_en", Value: bson.D{{Key: "$first", Value: schema.Ref(surahFields.Audio, audioFields.Rewaya, "en")}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "rewaya_ar", Value: 1}}}},
	}
}

// reciterRecitationsPipeline lists the surahs one reciter recorded.
func reciterRecitationsPipeline(reciterID int) mongo.Pipeline {
	return mongo.Pipeline{
		arrayOnly(surahFields.Audio),
		unwindAudio(),
		bson.D{{Key: "$match", Value: bson.D{{Key: schema.Path(surahFields.Audio, audioFields.ID), Value: reciterID}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "surah_number", Value: schema.Ref(surahFields.Number)},
			{Key: "surah_name", Value: schema.Ref(surahFields.Name)},
			{Key: "reciter", Value: schema.Ref(surahFields.Audio, audioFields.Reciter)},
			{Key: "rewaya", Value: schema.Ref(surahFields.Audio, audioFields.Rewaya)},
			{Key: "audio_link", Value: schema.Ref(surahFields.Audio, audioFields.Link)},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "surah_number", Value: 1}}}},
	}
}

// verseProjection is shared by the verse search and page listings.
func verseProjection() bson.D {
	return bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "surah_number", Value: schema.Ref(surahFields.Number)},
		{Key: "surah_name", Value: schema.Ref(surahFields.Name)},
		{Key: "verse_number", Value: schema.Ref(surahFields.Verses, verseFields.Number)},
		{Key: "verse_text", Value: schema.Ref(surahFields.Verses, verseFields.Text)},
		{Key: "page", Value: schema.Ref(surahFields.Verses, verseFields.Page)},
		{Key: "juz", Value: schema.Ref(surahFields.Verses, verseFields.Juz)},
	}}}
}

func verseOrder() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{
		{Key: "surah_number", Value: 1},
		{Key: "verse_number", Value: 1},
	}}}
}

func unwindVerses() bson.D {
	return bson.D{{Key: "$unwind", Value: schema.Ref(surahFields.Verses)}}
}

// verseSearchPipeline truncates after sorting, so the earliest matches win.
func verseSearchPipeline(query string, limit int) mongo.Pipeline {
	pattern := containsFold(query)

	return mongo.Pipeline{
		arrayOnly(surahFields.Verses),
		unwindVerses(),
		bson.D{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: schema.Path(surahFields.Verses, verseFields.Text, "ar"), Value: pattern}},
			bson.D{{Key: schema.Path(surahFields.Verses, verseFields.Text, "en"), Value: pattern}},
		}}}}},
		verseProjection(),
		verseOrder(),
		bson.D{{Key: "$limit", Value: limit}},
	}
}

func pageVersesPipeline(page int) mongo.Pipeline {
	return mongo.Pipeline{
		arrayOnly(surahFields.Verses),
		unwindVerses(),
		bson.D{{Key: "$match", Value: bson.D{{Key: schema.Path(surahFields.Verses, verseFields.Page), Value: page}}}},
		verseProjection(),
		verseOrder(),
	}
}

// navigationPipeline groups verses by juz. Pages and surahs come back as
// unordered sets and are sorted by the caller.
func navigationPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		arrayOnly(surahFields.Verses),
		unwindVerses(),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: schema.Ref(surahFields.Verses, verseFields.Juz)},
			{Key: "pages", Value: bson.D{{Key: "$addToSet", Value: schema.Ref(surahFields.Verses, verseFields.Page)}}},
			{Key: "surahs", Value: bson.D{{Key: "$addToSet", Value: bson.D{
				{Key: "number", Value: schema.Ref(surahFields.Number)},
				{Key: "name", Value: schema.Ref(surahFields.Name)},
			}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
