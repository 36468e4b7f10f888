// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package fixture loads a Quran dataset from JSON for the in-memory stores.

The file format mirrors an export of the two document collections:

	{
	  "surahs": [ {stored surah document}, ... ],
	  "tafsir": [ {"id": 1, "sura": 1, "aya": 1, "text": "..."}, ... ]
	}

Surah documents are kept as raw maps so the legacy string-encoded fields reach
the normalisation step unchanged. A small sample dataset is embedded for
development and tests.
*/
package fixture

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed sample.json
var sample []byte

// Dataset is a decoded export of the surah and tafsir collections.
type Dataset struct {
	// Surahs are stored documents in storage order.
	Surahs []map[string]any `json:"surahs"`
	// Tafsir is decoded lazily by the tafsir store.
	Tafsir json.RawMessage `json:"tafsir"`
}

// ErrEmptyDataset is returned when a dataset carries no surahs.
var ErrEmptyDataset = errors.New("fixture: dataset contains no surahs")

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(payload)
}

// Parse decodes a dataset from raw JSON.
func Parse(payload []byte) (*Dataset, error) {
	var dataset Dataset
	if err := json.Unmarshal(payload, &dataset); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if len(dataset.Surahs) == 0 {
		return nil, ErrEmptyDataset
	}
	return &dataset, nil
}

// Sample returns a fresh copy of the embedded sample dataset.
//
// It covers Al-Fatiha, the opening of Al-Baqarah and the last three surahs,
// including documents written by the legacy importer.
func Sample() *Dataset {
	dataset, err := Parse(sample)
	if err != nil {
		panic("fixture: embedded sample is invalid: " + err.Error())
	}
	return dataset
}

// DecodeTafsir unmarshals the tafsir records into dest.
func (dataset *Dataset) DecodeTafsir(dest any) error {
	if len(dataset.Tafsir) == 0 {
		return nil
	}
	if err := json.Unmarshal(dataset.Tafsir, dest); err != nil {
		return fmt.Errorf("fixture: decode tafsir: %w", err)
	}
	return nil
}
