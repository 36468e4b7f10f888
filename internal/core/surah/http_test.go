// Copyright (c) 2026 Quran API. All rights reserved.

package surah_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/core/surah"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	service := surah.NewService(sampleRepository(t), nil, discardLogger())
	surah.NewHandler(service).RegisterRoutes(router)
	return router
}

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHTTP_StatusCodes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/surahs", http.StatusOK},
		{"/surahs/1", http.StatusOK},
		{"/surahs/abc", http.StatusBadRequest},
		{"/surahs/999", http.StatusNotFound},
		{"/pages/1", http.StatusOK},
		{"/pages/one", http.StatusBadRequest},
		{"/audio/112", http.StatusOK},
		{"/audio/999", http.StatusNotFound},
		{"/audio/x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(t, router, tt.path).Code)
		})
	}
}

func TestHTTP_GetSurah_NotFoundEnvelope(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/surahs/999")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Surah not found", body["message"])
}

func TestHTTP_GetPage_AlFatiha(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/pages/1")
	require.Equal(t, http.StatusOK, recorder.Code)

	var view surah.PageView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))

	assert.Equal(t, 1, view.Page)
	require.Len(t, view.Surahs, 1)
	assert.Equal(t, 1, view.Surahs[0].ID)
	assert.Len(t, view.Surahs[0].Verses, 7)
}

func TestHTTP_GetPage_SharedPageKeepsStorageOrder(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/pages/604")

	var view surah.PageView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))

	ids := make([]int, 0, len(view.Surahs))
	for _, part := range view.Surahs {
		ids = append(ids, part.ID)
	}
	assert.Equal(t, []int{112, 113, 114}, ids)
}

func TestHTTP_GetPage_Empty(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/pages/300")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"page": 300, "surahs": []}`, recorder.Body.String())
}

func TestHTTP_GetSurah_Body(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/surahs/1")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["number"])
	assert.EqualValues(t, 7, body["verses_count"])
	assert.Len(t, body["verses"], 7)
	assert.Len(t, body["audio"], 3)
}

func TestHTTP_ListSurahs_Summary(t *testing.T) {
	recorder := serve(t, newTestRouter(t), "/surahs")

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summaries))
	require.Len(t, summaries, 5)
	assert.ElementsMatch(t, []string{"number", "name", "verses_count", "revelation_place"}, keys(summaries[0]))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	return out
}
