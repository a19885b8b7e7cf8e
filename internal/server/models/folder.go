package models

import "time"

// Folder is one row of a user's folder tree. Sibling folders of the same
// user cannot share a name.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderNode is a folder linked into its parent's children list. A node
// whose parent is absent from the user's own set becomes a root.
type FolderNode struct {
	Folder
	Children []*FolderNode `json:"children"`
}
