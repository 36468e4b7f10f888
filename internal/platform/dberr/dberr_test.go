// Copyright (c) 2026 Quran API. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"mongo_no_documents", mongo.ErrNoDocuments, http.StatusNotFound},
		{"pgx_no_rows", pgx.ErrNoRows, http.StatusNotFound},
		{"unknown", errors.New("socket closed"), http.StatusInternalServerError},
		{"already_classified", apperr.ValidationError("bad id"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "Surah", "find_surah"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Surah", "find_surah"))
}

func TestWrap_NotFoundMessage(t *testing.T) {
	err := dberr.Wrap(mongo.ErrNoDocuments, "Bookmark", "delete_bookmark")
	assert.Equal(t, "Bookmark not found", err.Error())
}
