package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notekeeper/internal/common"
	"notekeeper/internal/dbx"
	"notekeeper/internal/server/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, userID int64, title, description string, dueDate *string, priority string, noteID *int64) (int64, error) {
	query := `INSERT INTO todos (user_id, title, description, due_date, priority, note_id, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, userID, title, description, dueDate, priority, noteID, dbx.FormatTime(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID int64, f models.TodoFilter) ([]models.Todo, error) {
	query := `SELECT t.id, t.title, t.description, t.due_date, t.priority, t.completed, t.created_at, n.title
	          FROM todos t
	          LEFT JOIN notes n ON t.note_id = n.id
	          WHERE t.user_id = ?`
	args := []any{userID}

	switch f.Status {
	case "open":
		query += ` AND t.completed = 0`
	case "done":
		query += ` AND t.completed = 1`
	}
	if f.Priority != "" {
		query += ` AND t.priority = ?`
		args = append(args, f.Priority)
	}
	if f.NoteTitle != "" {
		query += ` AND n.title = ?`
		args = append(args, f.NoteTitle)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer rows.Close()

	var result []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Completed, &t.CreatedAt, &t.NoteTitle); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Toggle(ctx context.Context, userID, todoID int64) error {
	// Single statement keeps the flip atomic under concurrent toggles.
	query := `UPDATE todos SET completed = NOT completed WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, todoID, userID)
	if err != nil {
		return fmt.Errorf("failed to toggle todo: %w", err)
	}
	return requireRow(res.RowsAffected())
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, todoID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, todoID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return requireRow(res.RowsAffected())
}

func (r *SQLiteRepository) Exists(ctx context.Context, userID, todoID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM todos WHERE id = ? AND user_id = ?`, todoID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check todo: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

func requireRow(ra int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}
