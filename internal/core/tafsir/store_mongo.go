// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msr7799/quran-api/internal/platform/database/schema"
	"github.com/msr7799/quran-api/internal/platform/dberr"
)

var fields = schema.Tafsir

// MongoRepository implements [Repository] over the tafsir collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository binds the repository to an explicitly named collection.
func NewMongoRepository(database *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{collection: database.Collection(collection)}
}

func (repository *MongoRepository) FindByVerse(ctx context.Context, sura, aya int) (*Tafsir, error) {
	filter := bson.D{{Key: fields.Sura, Value: sura}, {Key: fields.Aya, Value: aya}}

	var record Tafsir
	if err := repository.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		return nil, dberr.Wrap(err, "Tafsir", "find_tafsir")
	}
	return &record, nil
}

func (repository *MongoRepository) ListBySurah(ctx context.Context, sura int) ([]Tafsir, error) {
	filter := bson.D{{Key: fields.Sura, Value: sura}}
	opts := options.Find().SetSort(bson.D{{Key: fields.Aya, Value: 1}})

	records, err := repository.find(ctx, filter, opts)
	if err != nil {
		return nil, dberr.Wrap(err, "Tafsir", "list_surah_tafsir")
	}
	return records, nil
}

func (repository *MongoRepository) Search(ctx context.Context, query string, limit int) ([]Tafsir, error) {
	filter := searchFilter(query)
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: fields.Sura, Value: 1}, {Key: fields.Aya, Value: 1}}).
		SetLimit(int64(limit))

	records, err := repository.find(ctx, filter, opts)
	if err != nil {
		return nil, dberr.Wrap(err, "Tafsir", "search_tafsir")
	}
	return records, nil
}

func (repository *MongoRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]Tafsir, error) {
	cursor, err := repository.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	records := make([]Tafsir, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// searchFilter matches query as a literal, ignoring case.
func searchFilter(query string) bson.D {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.D{{Key: fields.Text, Value: pattern}}
}
