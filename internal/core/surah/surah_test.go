// Copyright (c) 2026 Quran API. All rights reserved.

package surah_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/msr7799/quran-api/internal/core/surah"
	"github.com/msr7799/quran-api/internal/platform/fixture"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sampleRepository imports the embedded sample dataset.
// Storage order is 2, 1, 112, 113, 114; surah 113 uses the legacy encoding.
func sampleRepository(t *testing.T) *surah.MemoryRepository {
	t.Helper()
	return surah.NewMemoryRepository(surah.FromDocuments(fixture.Sample().Surahs, discardLogger()))
}
