package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"notekeeper/internal/common"
	"notekeeper/internal/dbx"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/models"
	"notekeeper/internal/server/repositories/folders"
	"notekeeper/internal/server/repositories/notes"
	"notekeeper/internal/server/repositories/tags"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

const (
	maxTitleLen      = 200
	defaultNoteLimit = 50

	// Content previews shown in list and search results.
	listPreviewLen   = 100
	searchPreviewLen = 150
)

// NoteService implements the note operations: create, get, list, edit,
// rename, delete, search, tagging, and folder assignment.
type NoteService struct {
	db      *sql.DB
	auth    authorizer
	notes   notes.Repository
	tags    tags.Repository
	folders folders.Repository
	logger  logging.Logger
}

func NewNoteService(db *sql.DB, sessions *session.Registry, logger logging.Logger) *NoteService {
	return &NoteService{
		db:      db,
		auth:    authorizer{sessions: sessions, users: users.NewSQLiteRepository(db)},
		notes:   notes.NewSQLiteRepository(db),
		tags:    tags.NewSQLiteRepository(db),
		folders: folders.NewSQLiteRepository(db),
		logger:  logger.With("module", "notes"),
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", validationError("title is required")
	}
	if len(title) > maxTitleLen {
		return "", validationError(fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}
	return title, nil
}

// Create inserts a note, optionally into one of the user's folders.
// Duplicate titles report common.ErrConflict.
func (s *NoteService) Create(ctx context.Context, token, title, content string, folderID *int64) (int64, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return 0, err
	}

	title, err = validateTitle(title)
	if err != nil {
		return 0, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, validationError("content is required")
	}

	if folderID != nil {
		if _, err := s.folders.Get(ctx, u.ID, *folderID); err != nil {
			return 0, err
		}
	}

	id, err := s.notes.Create(ctx, u.ID, title, content, folderID)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return 0, fmt.Errorf("%w: note title already exists", common.ErrConflict)
		}
		return 0, err
	}

	s.logger.Info(ctx, "note created", "user", u.Username, "note_id", id)
	return id, nil
}

// Get returns a note with its tags. Absent tags yield an empty list.
// Another user's note and a missing note are indistinguishable.
func (s *NoteService) Get(ctx context.Context, token, title string) (*models.Note, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}

	n, err := s.notes.GetByTitle(ctx, u.ID, title)
	if err != nil {
		return nil, err
	}

	n.Tags, err = s.tags.ForNote(ctx, n.ID)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// List returns up to limit notes ordered by modification time, newest
// first, as previews: the full content never leaves the service here.
func (s *NoteService) List(ctx context.Context, token string, limit int) ([]models.NotePreview, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultNoteLimit
	}

	list, err := s.notes.List(ctx, u.ID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]models.NotePreview, 0, len(list))
	for _, n := range list {
		noteTags, err := s.tags.ForNote(ctx, n.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.NotePreview{
			ID:         n.ID,
			Title:      n.Title,
			Preview:    preview(n.Content, listPreviewLen),
			CreatedAt:  n.CreatedAt,
			ModifiedAt: n.ModifiedAt,
			Tags:       noteTags,
		})
	}
	return result, nil
}

// UpdateContent replaces a note's content and refreshes modified_at.
func (s *NoteService) UpdateContent(ctx context.Context, token, title, content string) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	title, err = validateTitle(title)
	if err != nil {
		return err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return validationError("content is required")
	}

	return s.notes.UpdateContent(ctx, u.ID, title, content)
}

// Update applies a content change, a rename, or both in a single
// transaction: a rename that collides with an existing title rolls the
// content change back too.
func (s *NoteService) Update(ctx context.Context, token, title string, content, newTitle *string) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	title, err = validateTitle(title)
	if err != nil {
		return err
	}
	if content == nil && newTitle == nil {
		return validationError("either content or new_title is required")
	}

	var newContent string
	if content != nil {
		newContent = strings.TrimSpace(*content)
		if newContent == "" {
			return validationError("content is required")
		}
	}
	var renamed string
	if newTitle != nil {
		renamed, err = validateTitle(*newTitle)
		if err != nil {
			return err
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		notesTx := notes.NewSQLiteRepository(tx)
		if content != nil {
			if err := notesTx.UpdateContent(ctx, u.ID, title, newContent); err != nil {
				return err
			}
		}
		if newTitle != nil {
			if err := notesTx.Rename(ctx, u.ID, title, renamed); err != nil {
				if errors.Is(err, common.ErrConflict) {
					return fmt.Errorf("%w: note title already exists", common.ErrConflict)
				}
				return err
			}
		}
		return nil
	})
}

// Rename changes a note's title. The duplicate pre-check gives a friendly
// message; the unique constraint remains the authoritative arbiter under
// concurrent renames.
func (s *NoteService) Rename(ctx context.Context, token, oldTitle, newTitle string) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	oldTitle, err = validateTitle(oldTitle)
	if err != nil {
		return err
	}
	newTitle, err = validateTitle(newTitle)
	if err != nil {
		return err
	}

	if _, err := s.notes.ID(ctx, u.ID, newTitle); err == nil {
		return fmt.Errorf("%w: note title already exists", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	if err := s.notes.Rename(ctx, u.ID, oldTitle, newTitle); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return fmt.Errorf("%w: note title already exists", common.ErrConflict)
		}
		return err
	}
	return nil
}

// Delete removes a note; its tag links are cascade-deleted by the store.
func (s *NoteService) Delete(ctx context.Context, token, title string) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	title, err = validateTitle(title)
	if err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, u.ID, title); err != nil {
		return err
	}
	s.logger.Info(ctx, "note deleted", "user", u.Username, "title", title)
	return nil
}

// Search matches query case-insensitively against titles and contents and
// returns previews ordered by recency.
func (s *NoteService) Search(ctx context.Context, token, query string) ([]models.NotePreview, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("search query is required")
	}

	matches, err := s.notes.Search(ctx, u.ID, query)
	if err != nil {
		return nil, err
	}

	result := make([]models.NotePreview, 0, len(matches))
	for _, n := range matches {
		result = append(result, models.NotePreview{
			ID:         n.ID,
			Title:      n.Title,
			Preview:    preview(n.Content, searchPreviewLen),
			CreatedAt:  n.CreatedAt,
			ModifiedAt: n.ModifiedAt,
		})
	}
	return result, nil
}

// AddTags interns the given tag names, links them to the note, and returns
// the note's complete tag list afterwards. Names are trimmed; empty names
// are dropped silently; duplicates collapse. Idempotent.
func (s *NoteService) AddTags(ctx context.Context, token, title string, tagNames []string) ([]string, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}

	clean := cleanTags(tagNames)
	if len(clean) == 0 {
		return nil, validationError("at least one valid tag is required")
	}

	noteID, err := s.notes.ID(ctx, u.ID, title)
	if err != nil {
		return nil, err
	}

	var all []string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tagsTx := tags.NewSQLiteRepository(tx)
		for _, name := range clean {
			tagID, err := tagsTx.Ensure(ctx, name)
			if err != nil {
				return err
			}
			if err := tagsTx.LinkNote(ctx, noteID, tagID); err != nil {
				return err
			}
		}
		var txErr error
		all, txErr = tagsTx.ForNote(ctx, noteID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// SetFolder assigns the note to one of the user's folders; nil clears the
// association.
func (s *NoteService) SetFolder(ctx context.Context, token, title string, folderID *int64) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}

	title, err = validateTitle(title)
	if err != nil {
		return err
	}

	if folderID != nil {
		if _, err := s.folders.Get(ctx, u.ID, *folderID); err != nil {
			return err
		}
	}

	return s.notes.SetFolder(ctx, u.ID, title, folderID)
}

// preview truncates content to max runes, marking truncation with an
// ellipsis. Short content passes through unchanged.
func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}

// cleanTags trims tag names and silently drops the ones that are empty
// after trimming, deduplicating while preserving order.
func cleanTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	clean := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		clean = append(clean, name)
	}
	return clean
}
