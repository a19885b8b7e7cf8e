package todos

import (
	"context"

	"notekeeper/internal/server/models"
)

// Repository persists todos, scoped by the owning user id.
type Repository interface {
	// Create inserts a todo and returns its id. noteID is an optional
	// pre-resolved link to one of the user's notes.
	Create(ctx context.Context, userID int64, title, description string, dueDate *string, priority string, noteID *int64) (int64, error)

	// List returns todos matching the SQL-side filters (status, priority,
	// linked note title), newest first, without tags. The tag filter is
	// applied by the caller after loading each todo's tags.
	List(ctx context.Context, userID int64, f models.TodoFilter) ([]models.Todo, error)

	// Toggle flips the completed flag. Returns common.ErrNotFound when the
	// todo does not exist for this user.
	Toggle(ctx context.Context, userID, todoID int64) error

	// Delete removes the todo; tag links go with it via cascade.
	Delete(ctx context.Context, userID, todoID int64) error

	// Exists reports whether the todo belongs to the user.
	Exists(ctx context.Context, userID, todoID int64) (bool, error)

	// CountByUser returns the user's total todo count.
	CountByUser(ctx context.Context, userID int64) (int, error)
}
