// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/msr7799/quran-api/internal/platform/apperr"
	"github.com/msr7799/quran-api/pkg/slice"
	"github.com/msr7799/quran-api/pkg/uuid"
)

// MemoryRepository keeps bookmarks for the lifetime of the process.
type MemoryRepository struct {
	mu        sync.RWMutex
	bookmarks []Bookmark
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repository *MemoryRepository) List(_ context.Context, userID string) ([]Bookmark, error) {
	repository.mu.RLock()
	bookmarks := slice.Filter(repository.bookmarks, func(bookmark Bookmark) bool {
		return userID == "" || bookmark.UserID == userID
	})
	repository.mu.RUnlock()

	// UUIDv7 ids sort by creation time.
	slices.SortFunc(bookmarks, func(a, b Bookmark) int {
		return cmp.Or(b.AddedAt.Compare(a.AddedAt), cmp.Compare(b.ID, a.ID))
	})
	if bookmarks == nil {
		bookmarks = []Bookmark{}
	}
	return bookmarks, nil
}

func (repository *MemoryRepository) Create(_ context.Context, bookmark *Bookmark) error {
	bookmark.ID = uuid.New()

	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.bookmarks = append(repository.bookmarks, *bookmark)
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	if !uuid.Valid(id) {
		return ErrInvalidID
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := slices.IndexFunc(repository.bookmarks, func(bookmark Bookmark) bool { return bookmark.ID == id })
	if index < 0 {
		return apperr.NotFound("Bookmark")
	}
	repository.bookmarks = slices.Delete(repository.bookmarks, index, index+1)
	return nil
}
