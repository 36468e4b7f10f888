// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/msr7799/quran-api/internal/platform/database/schema"
)

// # Legacy normalisation

/*
FromDocument normalises a stored surah document. It never fails.

Two storage conventions share one collection: native nested documents, and
rows written by an older importer that stored some fields as JSON strings.
For every legacy-encoded field holding a string, the string is parsed as JSON
and the parsed value replaces it. A string that does not parse is logged and
kept as it was.

Each known field is then decoded into the typed model. A field that does not
fit its type is kept verbatim in Unparsed; unknown fields go to Extra.

Parameters:
  - doc: map[string]any (a bson.M from the driver or a decoded JSON object)
  - logger: *slog.Logger

Returns:
  - *Surah: The normalised aggregate
*/
func FromDocument(doc map[string]any, logger *slog.Logger) *Surah {
	fields := schema.Surah
	surah := &Surah{}
	log := logger.With(slog.Any("surah", doc[fields.Number]))

	for key, value := range doc {
		if !slices.Contains(fields.Known(), key) {
			surah.keep(&surah.Extra, key, value)
			continue
		}

		if slices.Contains(fields.LegacyEncoded(), key) {
			value = parseLegacyString(key, value, log)
		}

		if err := surah.decodeField(key, value); err != nil {
			log.Warn("surah_field_undecodable", slog.String("field", key), slog.Any("error", err))
			surah.keep(&surah.Unparsed, key, value)
		}
	}

	return surah
}

// FromDocuments normalises an imported batch and audits it.
//
// The data-quality audit runs here, once per import, so reads stay cheap.
func FromDocuments(docs []map[string]any, logger *slog.Logger) []*Surah {
	surahs := make([]*Surah, 0, len(docs))
	for _, doc := range docs {
		surahs = append(surahs, FromDocument(doc, logger))
	}
	LogAudit(logger, surahs)
	return surahs
}

func parseLegacyString(key string, value any, logger *slog.Logger) any {
	text, ok := value.(string)
	if !ok || text == "" {
		return value
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		logger.Warn("legacy_field_unparsed", slog.String("field", key), slog.Any("error", err))
		return value
	}
	return parsed
}

func (surah *Surah) decodeField(key string, value any) error {
	fields := schema.Surah
	switch key {
	case fields.Number:
		return decodeInto(value, &surah.Number)
	case fields.Name:
		return decodeInto(value, &surah.Name)
	case fields.RevelationPlace:
		return decodeInto(value, &surah.RevelationPlace)
	case fields.VersesCount:
		return decodeInto(value, &surah.VersesCount)
	case fields.WordsCount:
		return decodeInto(value, &surah.WordsCount)
	case fields.LettersCount:
		return decodeInto(value, &surah.LettersCount)
	case fields.Verses:
		return decodeInto(value, &surah.Verses)
	case fields.Audio:
		return decodeInto(value, &surah.Audio)
	}
	return nil
}

func (surah *Surah) keep(target *map[string]any, key string, value any) {
	if *target == nil {
		*target = make(map[string]any)
	}
	(*target)[key] = value
}

// decodeInto runs value through the BSON codec so driver values
// (primitive.A, primitive.M, int32) and JSON values (float64, []any)
// decode the same way.
func decodeInto[T any](value any, dest *T) error {
	payload, err := bson.Marshal(bson.M{"v": value})
	if err != nil {
		return err
	}

	var holder struct {
		V T `bson:"v"`
	}
	if err := bson.Unmarshal(payload, &holder); err != nil {
		return err
	}

	*dest = holder.V
	return nil
}

// # Serialisation

// MarshalJSON writes the typed fields plus everything the model preserved.
// A field kept in Unparsed is written in its stored form.
func (surah *Surah) MarshalJSON() ([]byte, error) {
	fields := schema.Surah
	out := make(map[string]any, len(fields.Known())+len(surah.Extra))
	maps.Copy(out, surah.Extra)

	verses := surah.Verses
	if verses == nil {
		verses = []Verse{}
	}
	audio := surah.Audio
	if audio == nil {
		audio = []Recitation{}
	}

	out[fields.Number] = surah.Number
	out[fields.Name] = surah.Name
	out[fields.RevelationPlace] = surah.RevelationPlace
	out[fields.VersesCount] = surah.VersesCount
	out[fields.WordsCount] = surah.WordsCount
	out[fields.LettersCount] = surah.LettersCount
	out[fields.Verses] = verses
	out[fields.Audio] = audio

	maps.Copy(out, surah.Unparsed)
	return json.Marshal(out)
}
