package tags

import (
	"context"
	"fmt"

	"notekeeper/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Ensure(ctx context.Context, name string) (int64, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO tags (name) VALUES (?)`, name); err != nil {
		return 0, fmt.Errorf("failed to insert tag: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to select tag id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) LinkNote(ctx context.Context, noteID, tagID int64) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO note_tags (note_id, tag_id) VALUES (?, ?)`, noteID, tagID)
	if err != nil {
		return fmt.Errorf("failed to link tag to note: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) LinkTodo(ctx context.Context, todoID, tagID int64) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO todo_tags (todo_id, tag_id) VALUES (?, ?)`, todoID, tagID)
	if err != nil {
		return fmt.Errorf("failed to link tag to todo: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ForNote(ctx context.Context, noteID int64) ([]string, error) {
	query := `SELECT t.name FROM tags t
	          JOIN note_tags nt ON t.id = nt.tag_id
	          WHERE nt.note_id = ?
	          ORDER BY t.name`
	return r.names(ctx, query, noteID)
}

func (r *SQLiteRepository) ForTodo(ctx context.Context, todoID int64) ([]string, error) {
	query := `SELECT t.name FROM tags t
	          JOIN todo_tags tt ON t.id = tt.tag_id
	          WHERE tt.todo_id = ?
	          ORDER BY t.name`
	return r.names(ctx, query, todoID)
}

func (r *SQLiteRepository) DistinctCountForUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(DISTINCT t.id) FROM tags t
	          JOIN note_tags nt ON t.id = nt.tag_id
	          JOIN notes n ON nt.note_id = n.id
	          WHERE n.user_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) names(ctx context.Context, query string, id int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select tags: %w", err)
	}
	defer rows.Close()

	// Empty result is an empty list, never nil.
	result := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
