package folders

import (
	"context"

	"notekeeper/internal/server/models"
)

// Repository persists the per-user folder hierarchy. Sibling folders cannot
// share a name; deleting a folder cascades to its descendants through the
// parent_id foreign key.
type Repository interface {
	// Create inserts a folder. Returns common.ErrConflict when a sibling
	// with the same name exists.
	Create(ctx context.Context, userID int64, name string, parentID *int64) (int64, error)

	// Get returns the folder or common.ErrNotFound.
	Get(ctx context.Context, userID, folderID int64) (*models.Folder, error)

	// ListByUser returns the user's folders as flat rows.
	ListByUser(ctx context.Context, userID int64) ([]models.Folder, error)

	// Rename changes a folder's name. Returns common.ErrConflict on a
	// sibling name clash, common.ErrNotFound when absent.
	Rename(ctx context.Context, userID, folderID int64, name string) error

	// SetParent re-parents a folder (nil moves it to the root). Cycle
	// checks are the caller's responsibility.
	SetParent(ctx context.Context, userID, folderID int64, parentID *int64) error

	// Delete removes the folder and, via cascade, its descendants.
	Delete(ctx context.Context, userID, folderID int64) error
}
