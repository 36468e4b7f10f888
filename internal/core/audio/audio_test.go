// Copyright (c) 2026 Quran API. All rights reserved.

package audio_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/core/audio"
	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/fixture"
)

// countingStore is an in-process cache.Store that records traffic.
type countingStore struct {
	entries map[string][]byte
	sets    int
}

func (store *countingStore) Get(_ context.Context, key string, dest any) (bool, error) {
	payload, ok := store.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, dest)
}

func (store *countingStore) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	store.entries[key] = payload
	store.sets++
	return nil
}

func newService(t *testing.T, store *countingStore) *audio.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := surah.NewMemoryRepository(surah.FromDocuments(fixture.Sample().Surahs, logger))
	if store == nil {
		return audio.NewService(repo, nil, logger)
	}
	return audio.NewService(repo, store, logger)
}

func TestListReciters_Cached(t *testing.T) {
	store := &countingStore{entries: make(map[string][]byte)}
	service := newService(t, store)

	first, err := service.ListReciters(t.Context())
	require.NoError(t, err)
	second, err := service.ListReciters(t.Context())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.sets)
	assert.Len(t, first, 3)
}

func TestReciterRecitations_NotFound(t *testing.T) {
	service := newService(t, nil)

	_, err := service.ReciterRecitations(t.Context(), 999)
	assert.True(t, apperr.IsNotFound(err))

	recitations, err := service.ReciterRecitations(t.Context(), 2)
	require.NoError(t, err)
	assert.Len(t, recitations, 2)
}

func TestSurahByRewaya(t *testing.T) {
	service := newService(t, nil)

	tests := []struct {
		name     string
		surah    int
		rewaya   string
		reciters []int
		missing  bool
	}{
		{name: "arabic", surah: 1, rewaya: "حفص", reciters: []int{123, 1}},
		{name: "english", surah: 1, rewaya: "Warsh", reciters: []int{2}},
		{name: "case_sensitive", surah: 1, rewaya: "warsh", missing: true},
		{name: "no_recitation", surah: 112, rewaya: "ورش", missing: true},
		{name: "no_surah", surah: 999, rewaya: "حفص", missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.SurahByRewaya(t.Context(), tt.surah, tt.rewaya)
			if tt.missing {
				assert.True(t, apperr.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.surah, result.Surah.Number)

			ids := make([]int, 0, len(result.Audio))
			for _, recitation := range result.Audio {
				ids = append(ids, recitation.ID)
			}
			assert.Equal(t, tt.reciters, ids)
		})
	}
}

func TestHTTP(t *testing.T) {
	router := audio.NewHandler(newService(t, nil)).Routes()

	tests := []struct {
		path   string
		status int
	}{
		{"/reciters", http.StatusOK},
		{"/rewayat", http.StatusOK},
		{"/navigation", http.StatusOK},
		{"/reciters/123", http.StatusOK},
		{"/reciters/999", http.StatusNotFound},
		{"/reciters/abc", http.StatusBadRequest},
		{"/surah/1/rewaya/" + url.PathEscape("حفص"), http.StatusOK},
		{"/surah/1/rewaya/Qalun", http.StatusNotFound},
		{"/surah/999/rewaya/Hafs", http.StatusNotFound},
		{"/surah/x/rewaya/Hafs", http.StatusBadRequest},
		{"/search/" + url.PathEscape("عفاسي"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestHTTP_SearchReciters_SingleAlafasi(t *testing.T) {
	router := audio.NewHandler(newService(t, nil)).Routes()
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/search/"+url.PathEscape("عفاسي"), nil))

	var reciters []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reciters))
	require.Len(t, reciters, 1)
	assert.EqualValues(t, 123, reciters[0]["id"])
}

func TestHTTP_SurahByRewaya_Body(t *testing.T) {
	router := audio.NewHandler(newService(t, nil)).Routes()
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/surah/114/rewaya/Warsh", nil))

	var body struct {
		Surah map[string]any   `json:"surah"`
		Audio []map[string]any `json:"audio"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.EqualValues(t, 114, body.Surah["number"])
	assert.Len(t, body.Audio, 1)
}
