package models

import "time"

// RecentNote identifies the most recently modified note in a stats summary.
type RecentNote struct {
	Title      string    `json:"title"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Stats is the per-user dashboard summary. TagCount counts distinct tags
// attached to at least one of the user's notes, not the global tag table.
type Stats struct {
	NoteCount  int         `json:"total_notes"`
	TagCount   int         `json:"total_tags"`
	TodoCount  int         `json:"total_todos"`
	RecentNote *RecentNote `json:"recent_note,omitempty"`
}
