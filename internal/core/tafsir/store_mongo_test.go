// Copyright (c) 2026 Quran API. All rights reserved.

package tafsir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter_Literal(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "text", Value: primitive.Regex{Pattern: `\(الله\)`, Options: "i"}}},
		searchFilter("(الله)"))
}
