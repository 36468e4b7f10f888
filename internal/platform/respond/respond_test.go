// Copyright (c) 2026 Quran API. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/respond"
)

func TestOK_WritesBarePayload(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, []int{1, 2, 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[1,2,3]`, recorder.Body.String())
}

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.NotFound("Surah"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Surah not found", body.Message)
	assert.Equal(t, apperr.CodeNotFound, body.Code)
}

func TestError_PlainErrorIsMasked(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("server selection error: context deadline exceeded"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "server selection")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Message(recorder, "Bookmark deleted successfully")

	assert.JSONEq(t, `{"message":"Bookmark deleted successfully"}`, recorder.Body.String())
}
