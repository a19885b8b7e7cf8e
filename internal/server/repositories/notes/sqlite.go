package notes

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

func (r *SQLiteRepository) Create(ctx context.Context, userID int64, title, content string, folderID *int64) (int64, error) {
	query := `INSERT INTO notes (user_id, title, content, created_at, modified_at, folder_id)
	          VALUES (?, ?, ?, ?, ?, ?)`

	now := dbx.FormatTime(time.Now())
	res, err := r.db.ExecContext(ctx, query, userID, title, content, now, now, folderID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrConflict
		}
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByTitle(ctx context.Context, userID int64, title string) (*models.Note, error) {
	query := `SELECT id, title, content, created_at, modified_at, reminder_date, folder_id
	          FROM notes WHERE user_id = ? AND title = ?`

	n := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, userID, title).
		Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.ModifiedAt, &n.ReminderDate, &n.FolderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select note: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) ID(ctx context.Context, userID int64, title string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM notes WHERE user_id = ? AND title = ?`, userID, title).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("failed to select note id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID int64, limit int) ([]models.Note, error) {
	query := `SELECT id, title, content, created_at, modified_at
	          FROM notes WHERE user_id = ?
	          ORDER BY modified_at DESC
	          LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *SQLiteRepository) UpdateContent(ctx context.Context, userID int64, title, content string) error {
	query := `UPDATE notes SET content = ?, modified_at = ? WHERE user_id = ? AND title = ?`

	res, err := r.db.ExecContext(ctx, query, content, dbx.FormatTime(time.Now()), userID, title)
	if err != nil {
		return fmt.Errorf("failed to update note content: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) Rename(ctx context.Context, userID int64, oldTitle, newTitle string) error {
	query := `UPDATE notes SET title = ?, modified_at = ? WHERE user_id = ? AND title = ?`

	res, err := r.db.ExecContext(ctx, query, newTitle, dbx.FormatTime(time.Now()), userID, oldTitle)
	if err != nil {
		// The unique constraint is the authoritative duplicate check.
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("failed to rename note: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID int64, title string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE user_id = ? AND title = ?`, userID, title)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) Search(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	pattern := "%" + query + "%"
	q := `SELECT id, title, content, created_at, modified_at
	      FROM notes
	      WHERE user_id = ? AND (title LIKE ? OR content LIKE ?)
	      ORDER BY modified_at DESC`

	rows, err := r.db.QueryContext(ctx, q, userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *SQLiteRepository) SetFolder(ctx context.Context, userID int64, title string, folderID *int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notes SET folder_id = ? WHERE user_id = ? AND title = ?`,
		folderID, userID, title)
	if err != nil {
		return fmt.Errorf("failed to set note folder: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) MostRecent(ctx context.Context, userID int64) (*models.RecentNote, error) {
	query := `SELECT title, modified_at FROM notes WHERE user_id = ?
	          ORDER BY modified_at DESC LIMIT 1`

	rn := &models.RecentNote{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&rn.Title, &rn.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select most recent note: %w", err)
	}
	return rn, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	var result []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.ModifiedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// requireRow converts a zero-rows-affected update into common.ErrNotFound.
func requireRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}
