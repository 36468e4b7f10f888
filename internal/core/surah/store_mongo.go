// Copyright (c) 2026 Quran API. All rights reserved.

package surah

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msr7799/quran-api/internal/platform/database/schema"
	"github.com/msr7799/quran-api/internal/platform/dberr"
	"github.com/msr7799/quran-api/pkg/slice"
)

// MongoRepository implements [Repository] over one MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoRepository binds the repository to an explicitly named collection.
func NewMongoRepository(database *mongo.Database, collection string, logger *slog.Logger) *MongoRepository {
	return &MongoRepository{
		collection: database.Collection(collection),
		logger:     logger,
	}
}

// # Document reads

func (repository *MongoRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	projection := bson.D{
		{Key: surahFields.Number, Value: 1},
		{Key: surahFields.Name, Value: 1},
		{Key: surahFields.VersesCount, Value: 1},
		{Key: surahFields.RevelationPlace, Value: 1},
	}

	surahs, err := repository.findDocuments(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, dberr.Wrap(err, "Surah", "list_surahs")
	}

	return slice.Map(surahs, func(surah *Surah) Summary { return surah.Summary() }), nil
}

// FindByNumber also matches documents whose number was stored as a string.
func (repository *MongoRepository) FindByNumber(ctx context.Context, number int) (*Surah, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: surahFields.Number, Value: number}},
		bson.D{{Key: surahFields.Number, Value: strconv.Itoa(number)}},
	}}}

	var doc bson.M
	if err := repository.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, dberr.Wrap(err, "Surah", "find_surah")
	}
	return FromDocument(doc, repository.logger), nil
}

func (repository *MongoRepository) FindByPage(ctx context.Context, page int) ([]*Surah, error) {
	filter := bson.D{{Key: schema.Path(surahFields.Verses, verseFields.Page), Value: page}}

	surahs, err := repository.findDocuments(ctx, filter)
	if err != nil {
		return nil, dberr.Wrap(err, "Surah", "find_surahs_by_page")
	}
	return surahs, nil
}

func (repository *MongoRepository) findDocuments(ctx context.Context, filter bson.D, opts ...*options.FindOptions) ([]*Surah, error) {
	cursor, err := repository.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	surahs := make([]*Surah, 0, len(docs))
	for _, doc := range docs {
		surahs = append(surahs, FromDocument(doc, repository.logger))
	}
	return surahs, nil
}

// # Aggregations

func (repository *MongoRepository) ListReciters(ctx context.Context, nameQuery string) ([]ReciterSummary, error) {
	reciters := make([]ReciterSummary, 0)
	if err := repository.aggregate(ctx, reciterPipeline(nameQuery), &reciters); err != nil {
		return nil, dberr.Wrap(err, "Reciter", "list_reciters")
	}
	return reciters, nil
}

func (repository *MongoRepository) ListRewayat(ctx context.Context) ([]RewayaSummary, error) {
	rewayat := make([]RewayaSummary, 0)
	if err := repository.aggregate(ctx, rewayatPipeline(), &rewayat); err != nil {
		return nil, dberr.Wrap(err, "Rewaya", "list_rewayat")
	}
	return rewayat, nil
}

func (repository *MongoRepository) ListReciterRecitations(ctx context.Context, reciterID int) ([]ReciterRecitation, error) {
	rows := make([]recitationRow, 0)
	if err := repository.aggregate(ctx, reciterRecitationsPipeline(reciterID), &rows); err != nil {
		return nil, dberr.Wrap(err, "Reciter", "list_reciter_recitations")
	}

	recitations := make([]ReciterRecitation, 0, len(rows))
	for _, row := range rows {
		recitations = append(recitations, ReciterRecitation{
			SurahNumber: int(row.SurahNumber),
			SurahName:   row.SurahName.Name,
			Reciter:     row.Reciter,
			Rewaya:      row.Rewaya,
			AudioLink:   row.AudioLink,
		})
	}
	return recitations, nil
}

func (repository *MongoRepository) SearchVerses(ctx context.Context, query string, limit int) ([]VerseMatch, error) {
	rows := make([]verseRow, 0)
	if err := repository.aggregate(ctx, verseSearchPipeline(query, limit), &rows); err != nil {
		return nil, dberr.Wrap(err, "Verse", "search_verses")
	}
	return slice.Map(rows, verseRow.match), nil
}

func (repository *MongoRepository) ListPageVerses(ctx context.Context, page int) ([]VerseMatch, error) {
	rows := make([]verseRow, 0)
	if err := repository.aggregate(ctx, pageVersesPipeline(page), &rows); err != nil {
		return nil, dberr.Wrap(err, "Page", "list_page_verses")
	}
	return slice.Map(rows, verseRow.match), nil
}

func (repository *MongoRepository) Navigation(ctx context.Context) ([]JuzIndex, error) {
	rows := make([]juzRow, 0)
	if err := repository.aggregate(ctx, navigationPipeline(), &rows); err != nil {
		return nil, dberr.Wrap(err, "Juz", "quran_navigation")
	}

	index := make([]JuzIndex, 0, len(rows))
	for _, row := range rows {
		surahs := slice.Map(row.Surahs, func(ref surahRefRow) SurahRef {
			return SurahRef{Number: int(ref.Number), Name: ref.Name.Name}
		})
		index = append(index, newJuzIndex(row.Juz, row.Pages, surahs))
	}
	return index, nil
}

func (repository *MongoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, results any) error {
	cursor, err := repository.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

// newJuzIndex sorts the set-valued fields so responses are deterministic.
// Surahs are keyed by number; a name that differs between documents does
// not produce a second entry.
func newJuzIndex(juz int, pages []int, surahs []SurahRef) JuzIndex {
	pages = slices.Clone(pages)
	slices.Sort(pages)
	pages = slices.Compact(pages)

	slices.SortStableFunc(surahs, func(a, b SurahRef) int { return a.Number - b.Number })
	surahs = slice.UniqueBy(surahs, func(ref SurahRef) int { return ref.Number })

	if pages == nil {
		pages = []int{}
	}
	if surahs == nil {
		surahs = []SurahRef{}
	}
	return JuzIndex{JuzNumber: juz, Pages: pages, Surahs: surahs}
}

// # Row decoding
//
// Projected rows can carry a surah's number and name from legacy documents,
// where they were stored as strings.

type recitationRow struct {
	SurahNumber storedInt  `bson:"surah_number"`
	SurahName   storedName `bson:"surah_name"`
	Reciter     Localized  `bson:"reciter"`
	Rewaya      Localized  `bson:"rewaya"`
	AudioLink   string     `bson:"audio_link"`
}

type verseRow struct {
	SurahNumber storedInt  `bson:"surah_number"`
	SurahName   storedName `bson:"surah_name"`
	VerseNumber int        `bson:"verse_number"`
	VerseText   Localized  `bson:"verse_text"`
	Page        int        `bson:"page"`
	Juz         int        `bson:"juz"`
}

func (row verseRow) match() VerseMatch {
	return VerseMatch{
		SurahNumber: int(row.SurahNumber),
		SurahName:   row.SurahName.Name,
		VerseNumber: row.VerseNumber,
		VerseText:   row.VerseText,
		Page:        row.Page,
		Juz:         row.Juz,
	}
}

type juzRow struct {
	Juz    int           `bson:"_id"`
	Pages  []int         `bson:"pages"`
	Surahs []surahRefRow `bson:"surahs"`
}

type surahRefRow struct {
	Number storedInt  `bson:"number"`
	Name   storedName `bson:"name"`
}

// storedInt decodes an integer stored natively or as a decimal string.
type storedInt int

func (n *storedInt) UnmarshalBSONValue(kind bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: kind, Value: data}
	switch kind {
	case bsontype.Int32:
		*n = storedInt(raw.Int32())
	case bsontype.Int64:
		*n = storedInt(raw.Int64())
	case bsontype.Double:
		*n = storedInt(raw.Double())
	case bsontype.String:
		value, err := strconv.Atoi(strings.TrimSpace(raw.StringValue()))
		if err != nil {
			return fmt.Errorf("stored number %q: %w", raw.StringValue(), err)
		}
		*n = storedInt(value)
	case bsontype.Null, bsontype.Undefined:
		*n = 0
	default:
		return fmt.Errorf("stored number has type %s", kind)
	}
	return nil
}

// storedName decodes a name stored as a sub-document or a JSON string.
// A string that is not valid JSON decodes to the zero name.
type storedName struct {
	Name
}

func (n *storedName) UnmarshalBSONValue(kind bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: kind, Value: data}
	switch kind {
	case bsontype.String:
		if err := json.Unmarshal([]byte(raw.StringValue()), &n.Name); err != nil {
			n.Name = Name{}
		}
		return nil
	case bsontype.EmbeddedDocument:
		return raw.Unmarshal(&n.Name)
	default:
		n.Name = Name{}
		return nil
	}
}
