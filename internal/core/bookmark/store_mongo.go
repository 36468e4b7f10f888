// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/database/schema"
	"github.com/msr7799/quran-api/internal/platform/dberr"
)

var fields = schema.BookmarkDocument

// MongoRepository stores bookmarks as documents with ObjectID keys.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository binds the repository to an explicitly named collection.
func NewMongoRepository(database *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{collection: database.Collection(collection)}
}

// document mirrors the stored shape. Keep the tags in sync with schema.BookmarkDocument.
type document struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	SurahID int                `bson:"surahId"`
	VerseID int                `bson:"verseId"`
	UserID  string             `bson:"userId"`
	AddedAt time.Time          `bson:"addedAt"`
}

func (doc document) bookmark() Bookmark {
	return Bookmark{
		ID:      doc.ID.Hex(),
		SurahID: doc.SurahID,
		VerseID: doc.VerseID,
		UserID:  doc.UserID,
		AddedAt: doc.AddedAt.UTC(),
	}
}

func (repository *MongoRepository) List(ctx context.Context, userID string) ([]Bookmark, error) {
	cursor, err := repository.collection.Find(ctx, listFilter(userID), options.Find().SetSort(newestFirst()))
	if err != nil {
		return nil, dberr.Wrap(err, "Bookmark", "list_bookmarks")
	}

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dberr.Wrap(err, "Bookmark", "decode_bookmarks")
	}

	bookmarks := make([]Bookmark, 0, len(docs))
	for _, doc := range docs {
		bookmarks = append(bookmarks, doc.bookmark())
	}
	return bookmarks, nil
}

func (repository *MongoRepository) Create(ctx context.Context, bookmark *Bookmark) error {
	doc := document{
		ID:      primitive.NewObjectID(),
		SurahID: bookmark.SurahID,
		VerseID: bookmark.VerseID,
		UserID:  bookmark.UserID,
		AddedAt: bookmark.AddedAt,
	}

	if _, err := repository.collection.InsertOne(ctx, doc); err != nil {
		return dberr.Wrap(err, "Bookmark", "create_bookmark")
	}

	bookmark.ID = doc.ID.Hex()
	return nil
}

func (repository *MongoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := repository.collection.DeleteOne(ctx, bson.D{{Key: fields.ID, Value: objectID}})
	if err != nil {
		return dberr.Wrap(err, "Bookmark", "delete_bookmark")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Bookmark")
	}
	return nil
}

func listFilter(userID string) bson.D {
	if userID == "" {
		return bson.D{}
	}
	return bson.D{{Key: fields.UserID, Value: userID}}
}

// newestFirst breaks addedAt ties by ObjectID, which grows with insertion.
func newestFirst() bson.D {
	return bson.D{{Key: fields.AddedAt, Value: -1}, {Key: fields.ID, Value: -1}}
}
