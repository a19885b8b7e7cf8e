package models

import "time"

// Todo priorities. DueDate is a free-form string, not validated as a date.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

// Todo is a user-owned task, optionally linked to one of the user's notes.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	NoteTitle   *string   `json:"note_title,omitempty"`
	Tags        []string  `json:"tags"`
}

// TodoFilter combines the optional, conjunctive list_todos filters.
// Status is "open", "done", or "" for both.
type TodoFilter struct {
	Status    string
	Tag       string
	Priority  string
	NoteTitle string
}
