package tags

import "context"

// Repository manages the global tag vocabulary and its note/todo membership
// relations. Tag rows are shared across users; the junctions carry no
// payload beyond the two ids.
type Repository interface {
	// Ensure interns a tag name, creating the row if absent, and returns
	// its id. Idempotent.
	Ensure(ctx context.Context, name string) (int64, error)

	// LinkNote attaches a tag to a note. Idempotent.
	LinkNote(ctx context.Context, noteID, tagID int64) error

	// LinkTodo attaches a tag to a todo. Idempotent.
	LinkTodo(ctx context.Context, todoID, tagID int64) error

	// ForNote returns the note's tag names. Never nil.
	ForNote(ctx context.Context, noteID int64) ([]string, error)

	// ForTodo returns the todo's tag names. Never nil.
	ForTodo(ctx context.Context, todoID int64) ([]string, error)

	// DistinctCountForUser counts distinct tags attached to at least one
	// of the user's notes.
	DistinctCountForUser(ctx context.Context, userID int64) (int, error)
}
