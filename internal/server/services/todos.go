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
	"notekeeper/internal/server/repositories/notes"
	"notekeeper/internal/server/repositories/tags"
	"notekeeper/internal/server/repositories/todos"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

// CreateTodoInput bundles the optional fields of a new todo.
type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Tags        []string
	NoteTitle   string
}

// TodoService implements todo creation, filtered listing, completion
// toggling, and deletion.
type TodoService struct {
	db     *sql.DB
	auth   authorizer
	todos  todos.Repository
	notes  notes.Repository
	tags   tags.Repository
	logger logging.Logger
}

func NewTodoService(db *sql.DB, sessions *session.Registry, logger logging.Logger) *TodoService {
	return &TodoService{
		db:     db,
		auth:   authorizer{sessions: sessions, users: users.NewSQLiteRepository(db)},
		todos:  todos.NewSQLiteRepository(db),
		notes:  notes.NewSQLiteRepository(db),
		tags:   tags.NewSQLiteRepository(db),
		logger: logger.With("module", "todos"),
	}
}

// Create inserts a todo. An empty priority defaults to normal; any other
// unknown value is rejected. The optional note link is resolved by title at
// creation time and silently dropped when the note does not exist.
func (s *TodoService) Create(ctx context.Context, token string, in CreateTodoInput) (int64, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return 0, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return 0, validationError("title is required")
	}
	if len(title) > maxTitleLen {
		return 0, validationError(fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.ValidPriority(priority) {
		return 0, validationError("priority must be low, normal, or high")
	}

	var dueDate *string
	if d := strings.TrimSpace(in.DueDate); d != "" {
		dueDate = &d
	}

	var noteID *int64
	if nt := strings.TrimSpace(in.NoteTitle); nt != "" {
		id, err := s.notes.ID(ctx, u.ID, nt)
		switch {
		case err == nil:
			noteID = &id
		case errors.Is(err, common.ErrNotFound):
			// Missing note: the link is dropped, not an error.
		default:
			return 0, err
		}
	}

	clean := cleanTags(in.Tags)
	description := strings.TrimSpace(in.Description)

	var todoID int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		todosTx := todos.NewSQLiteRepository(tx)
		var txErr error
		todoID, txErr = todosTx.Create(ctx, u.ID, title, description, dueDate, priority, noteID)
		if txErr != nil {
			return txErr
		}

		tagsTx := tags.NewSQLiteRepository(tx)
		for _, name := range clean {
			tagID, txErr := tagsTx.Ensure(ctx, name)
			if txErr != nil {
				return txErr
			}
			if txErr := tagsTx.LinkTodo(ctx, todoID, tagID); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "todo created", "user", u.Username, "todo_id", todoID)
	return todoID, nil
}

// List returns the user's todos, newest first, with all filters applied
// conjunctively. The tag filter is resolved in memory after each todo's
// tags are loaded.
func (s *TodoService) List(ctx context.Context, token string, f models.TodoFilter) ([]models.Todo, error) {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	list, err := s.todos.List(ctx, u.ID, f)
	if err != nil {
		return nil, err
	}

	result := make([]models.Todo, 0, len(list))
	for _, t := range list {
		t.Tags, err = s.tags.ForTodo(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		if f.Tag != "" && !contains(t.Tags, f.Tag) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// Toggle flips a todo's completed flag.
func (s *TodoService) Toggle(ctx context.Context, token string, todoID int64) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}
	return s.todos.Toggle(ctx, u.ID, todoID)
}

// Delete removes a todo and, via cascade, its tag links.
func (s *TodoService) Delete(ctx context.Context, token string, todoID int64) error {
	u, err := s.auth.currentUser(ctx, token)
	if err != nil {
		return err
	}
	return s.todos.Delete(ctx, u.ID, todoID)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
