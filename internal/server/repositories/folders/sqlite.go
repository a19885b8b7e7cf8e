package folders

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

func (r *SQLiteRepository) Create(ctx context.Context, userID int64, name string, parentID *int64) (int64, error) {
	query := `INSERT INTO folders (user_id, name, parent_id, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, userID, name, parentID, dbx.FormatTime(time.Now()))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrConflict
		}
		return 0, fmt.Errorf("failed to insert folder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, folderID int64) (*models.Folder, error) {
	query := `SELECT id, name, parent_id, created_at FROM folders WHERE id = ? AND user_id = ?`

	f := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, folderID, userID).Scan(&f.ID, &f.Name, &f.ParentID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select folder: %w", err)
	}
	return f, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Folder, error) {
	query := `SELECT id, name, parent_id, created_at FROM folders
	          WHERE user_id = ?
	          ORDER BY parent_id, name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}
	defer rows.Close()

	var result []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.ParentID, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Rename(ctx context.Context, userID, folderID int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE folders SET name = ? WHERE id = ? AND user_id = ?`,
		name, folderID, userID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("failed to rename folder: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) SetParent(ctx context.Context, userID, folderID int64, parentID *int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE folders SET parent_id = ? WHERE id = ? AND user_id = ?`,
		parentID, folderID, userID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("failed to move folder: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, folderID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = ? AND user_id = ?`, folderID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return requireRow(res)
}

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
