package models

import "time"

// Note is a user-owned note. Title is unique per user and serves as the
// public identifier in most operations.
type Note struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
	ReminderDate *string   `json:"reminder_date,omitempty"`
	FolderID     *int64    `json:"folder_id,omitempty"`
	Tags         []string  `json:"tags"`
}

// NotePreview is the list/search projection of a note: a bounded content
// preview instead of the full body.
type NotePreview struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Preview    string    `json:"preview"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	Tags       []string  `json:"tags,omitempty"`
}
