// Copyright (c) 2026 Quran API. All rights reserved.

package validate_test

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"arabic text", "الرحمن", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Required("query", tt.value).Err()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "query", ae.Details[0].Field)
		})
	}
}

func TestValidator_MaxLenCountsRunes(t *testing.T) {
	// 200 Arabic letters are 400 bytes.
	assert.NoError(t, (&validate.Validator{}).MaxLen("query", strings.Repeat("ب", 200), 200).Err())
	assert.Error(t, (&validate.Validator{}).MaxLen("query", strings.Repeat("ب", 201), 200).Err())
}

func TestValidator_Int(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"plain", "114", 114, false},
		{"padded", " 7 ", 7, false},
		{"negative", "-1", -1, false},
		{"trailing garbage", "12abc", 42, true},
		{"word", "abc", 42, true},
		{"empty", "", 42, true},
		{"float", "1.5", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 42
			err := (&validate.Validator{}).Int("surahId", tt.raw, &got).Err()

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_ChainCollectsEveryFailure(t *testing.T) {
	var surah, page int

	err := (&validate.Validator{}).
		Required("query", "").
		MaxLen("rewaya", strings.Repeat("x", 201), 200).
		Int("surahId", "x", &surah).
		Int("pageNumber", "604", &page).
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	fields := []string{ae.Details[0].Field, ae.Details[1].Field, ae.Details[2].Field}
	assert.Equal(t, []string{"query", "rewaya", "surahId"}, fields)
	assert.Equal(t, 604, page)
}

type sampleRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStruct_DetailsSortedByJSONName(t *testing.T) {
	input := &sampleRequest{}

	err := validate.Struct(input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Count, validation.Required, validation.Min(1)),
	)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "count", ae.Details[0].Field)
	assert.Equal(t, "name", ae.Details[1].Field)
}

func TestStruct_Valid(t *testing.T) {
	input := &sampleRequest{Name: "ok", Count: 3}

	err := validate.Struct(input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Count, validation.Min(1)),
	)

	assert.NoError(t, err)
}
