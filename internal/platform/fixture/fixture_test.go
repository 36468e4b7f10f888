// Copyright (c) 2026 Quran API. All rights reserved.

package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/platform/fixture"
)

func TestSample(t *testing.T) {
	dataset := fixture.Sample()

	require.Len(t, dataset.Surahs, 5)
	assert.EqualValues(t, 2, dataset.Surahs[0]["number"], "storage order is preserved")
	assert.IsType(t, "", dataset.Surahs[3]["verses"], "legacy document keeps its encoded fields")

	var records []struct {
		Sura int `json:"sura"`
		Aya  int `json:"aya"`
	}
	require.NoError(t, dataset.DecodeTafsir(&records))
	assert.Len(t, records, 3)
}

func TestSample_ReturnsCopies(t *testing.T) {
	first := fixture.Sample()
	first.Surahs[0]["number"] = 999.0

	assert.EqualValues(t, 2, fixture.Sample().Surahs[0]["number"])
}

func TestParse_Errors(t *testing.T) {
	_, err := fixture.Parse([]byte(`{"surahs": []}`))
	assert.ErrorIs(t, err, fixture.ErrEmptyDataset)

	_, err = fixture.Parse([]byte(`{"surahs": `))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quran.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"surahs": [{"number": 1}]}`), 0o600))

	dataset, err := fixture.Load(path)

	require.NoError(t, err)
	assert.Len(t, dataset.Surahs, 1)

	var records []map[string]any
	require.NoError(t, dataset.DecodeTafsir(&records))
	assert.Empty(t, records)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
