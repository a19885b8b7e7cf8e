package notes

import (
	"context"

	"notekeeper/internal/server/models"
)

// Repository persists notes. Every operation is scoped by the owning user
// id; titles are the public identifier and unique per user.
type Repository interface {
	// Create inserts a note. Returns common.ErrConflict when the user
	// already has a note with this title.
	Create(ctx context.Context, userID int64, title, content string, folderID *int64) (int64, error)

	// GetByTitle returns the note without tags, or common.ErrNotFound.
	GetByTitle(ctx context.Context, userID int64, title string) (*models.Note, error)

	// ID resolves a title to a note id, or common.ErrNotFound.
	ID(ctx context.Context, userID int64, title string) (int64, error)

	// List returns up to limit notes ordered by modified_at descending.
	List(ctx context.Context, userID int64, limit int) ([]models.Note, error)

	// UpdateContent replaces the content and refreshes modified_at.
	// Returns common.ErrNotFound when no matching row exists.
	UpdateContent(ctx context.Context, userID int64, title, content string) error

	// Rename changes a note's title. Returns common.ErrConflict when the
	// new title is taken, common.ErrNotFound when the note is absent.
	Rename(ctx context.Context, userID int64, oldTitle, newTitle string) error

	// Delete removes the note; tag links go with it via cascade.
	Delete(ctx context.Context, userID int64, title string) error

	// Search returns notes whose title or content contains query,
	// case-insensitively, ordered by modified_at descending.
	Search(ctx context.Context, userID int64, query string) ([]models.Note, error)

	// SetFolder associates the note with a folder (nil clears it).
	SetFolder(ctx context.Context, userID int64, title string, folderID *int64) error

	// CountByUser returns the user's total note count.
	CountByUser(ctx context.Context, userID int64) (int, error)

	// MostRecent returns the most recently modified note's title and
	// timestamp, or common.ErrNotFound when the user has no notes.
	MostRecent(ctx context.Context, userID int64) (*models.RecentNote, error)
}
