// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package bookmark stores verses saved by users.

Users are identified by an opaque id supplied by the client. Bookmarks are
listed newest first and may live in MongoDB, PostgreSQL or process memory.
*/
package bookmark

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/msr7799/quran-api/internal/platform/apperr"
)

// ErrInvalidID is returned for an id the selected store could never have issued.
var ErrInvalidID = apperr.ValidationError("Invalid bookmark id")

// Bookmark is one saved verse.
type Bookmark struct {
	ID      string    `json:"_id"`
	SurahID int       `json:"surahId"`
	VerseID int       `json:"verseId"`
	UserID  string    `json:"userId"`
	AddedAt time.Time `json:"addedAt"`
}

// NewBookmark is the validated input of [Service.Create].
type NewBookmark struct {
	SurahID int    `json:"surahId"`
	VerseID int    `json:"verseId"`
	UserID  string `json:"userId"`
}

// createRequest is the POST body. Ids may arrive as numbers or numeric strings.
type createRequest struct {
	SurahID flexInt `json:"surahId"`
	VerseID flexInt `json:"verseId"`
	UserID  string  `json:"userId"`
}

func (body createRequest) input() NewBookmark {
	return NewBookmark{
		SurahID: int(body.SurahID),
		VerseID: int(body.VerseID),
		UserID:  strings.TrimSpace(body.UserID),
	}
}

// flexInt decodes a JSON integer or a string holding one.
// Anything else decodes to zero and fails the required check.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = 0
	switch value := raw.(type) {
	case float64:
		if value == math.Trunc(value) && math.Abs(value) <= math.MaxInt32 {
			*n = flexInt(value)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			*n = flexInt(parsed)
		}
	}
	return nil
}
