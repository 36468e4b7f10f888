// Copyright (c) 2026 Quran API. All rights reserved.

/*
Package uuid generates the time-ordered identifiers used for bookmarks stored
outside MongoDB.

Version 7 values sort by creation time, which keeps the PostgreSQL primary key
index append-only and lets the memory store order bookmarks by id.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
