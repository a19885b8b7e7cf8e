package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"notekeeper/internal/common"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/models"
	"notekeeper/internal/server/repositories/folders"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

// FolderService implements the hierarchical folder operations: create,
// tree listing, rename, move, and delete.
type FolderService struct {
	auth    authorizer
	folders folders.Repository
	logger  logging.Logger
}

func NewFolderService(db *sql.DB, sessions *session.Registry, logger logging.Logger) *FolderService {
	return &FolderService{
		auth:    authorizer{sessions: sessions, users: users.NewSQLiteRepository(db)},
		folders: folders.NewSQLiteRepository(db),
		logger:  logger.With("module", "folders"),
	}
}

func (s *FolderService) validateParent(ctx context.Context, userID int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	_, err := s.folders.Get(ctx, userID, *parentID)
	return err
}

// Create inserts a folder under parentID (nil for a root folder). Sibling
// name clashes report common.ErrConflict.
func (s *FolderService) Create(ctx context.Context, token, name string, parentID *int64) (int64, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return 0, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, validationError("folder name is required")
	}

	if err := s.validateParent(ctx, u.ID, parentID); err != nil {
		return 0, err
	}

	id, err := s.folders.Create(ctx, u.ID, name, parentID)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return 0, fmt.Errorf("%w: folder name already exists", common.ErrConflict)
		}
		return 0, err
	}
	return id, nil
}

// Tree returns the user's folders as a forest. Folders are loaded flat and
// linked into their parents; a node whose parent_id is null or points
// outside the user's own set becomes a root rather than an error.
func (s *FolderService) Tree(ctx context.Context, token string) ([]*models.FolderNode, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	flat, err := s.folders.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[int64]*models.FolderNode, len(flat))
	for _, f := range flat {
		nodes[f.ID] = &models.FolderNode{Folder: f, Children: []*models.FolderNode{}}
	}

	roots := []*models.FolderNode{}
	for _, f := range flat {
		node := nodes[f.ID]
		if f.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*f.ParentID]
		if !ok {
			// Dangling parent reference: treat the node as a root.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots, nil
}

// Rename changes a folder's name, keeping sibling uniqueness.
func (s *FolderService) Rename(ctx context.Context, token string, folderID int64, name string) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("folder name is required")
	}

	if err := s.folders.Rename(ctx, u.ID, folderID, name); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return fmt.Errorf("%w: folder name already exists", common.ErrConflict)
		}
		return err
	}
	return nil
}

// Move re-parents a folder (nil parentID moves it to the root). Moving a
// folder into itself or its own subtree is rejected: the ancestor chain of
// the proposed parent is walked before the write.
func (s *FolderService) Move(ctx context.Context, token string, folderID int64, parentID *int64) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	if _, err := s.folders.Get(ctx, u.ID, folderID); err != nil {
		return err
	}

	if parentID != nil {
		if err := s.validateParent(ctx, u.ID, parentID); err != nil {
			return err
		}
		cycle, err := s.wouldCycle(ctx, u.ID, folderID, *parentID)
		if err != nil {
			return err
		}
		if cycle {
			return validationError("cannot move a folder into its own subtree")
		}
	}

	if err := s.folders.SetParent(ctx, u.ID, folderID, parentID); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return fmt.Errorf("%w: folder name already exists", common.ErrConflict)
		}
		return err
	}
	return nil
}

// wouldCycle walks up from the proposed parent and reports whether it
// passes through the folder being moved.
func (s *FolderService) wouldCycle(ctx context.Context, userID, folderID, parentID int64) (bool, error) {
	if folderID == parentID {
		return true, nil
	}

	flat, err := s.folders.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	parents := make(map[int64]*int64, len(flat))
	for _, f := range flat {
		parents[f.ID] = f.ParentID
	}

	for cur := &parentID; cur != nil; cur = parents[*cur] {
		if *cur == folderID {
			return true, nil
		}
	}
	return false, nil
}

// Delete removes a folder; descendant folders go with it via the store's
// cascade, while notes inside only lose their folder association.
func (s *FolderService) Delete(ctx context.Context, token string, folderID int64) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	if err := s.folders.Delete(ctx, u.ID, folderID); err != nil {
		return err
	}
	s.logger.Info(ctx, "folder deleted", "user", u.Username, "folder_id", folderID)
	return nil
}
