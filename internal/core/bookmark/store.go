// Copyright (c) 2026 Quran API. All rights reserved.

package bookmark

import "context"

// Repository persists bookmarks.
type Repository interface {
	// List returns bookmarks newest first. An empty userID lists every user.
	List(ctx context.Context, userID string) ([]Bookmark, error)

	// Create assigns bookmark.ID and stores it.
	Create(ctx context.Context, bookmark *Bookmark) error

	// Delete returns NotFound when no bookmark has that id.
	Delete(ctx context.Context, id string) error
}
