package users

import (
	"context"

	"notekeeper/internal/server/models"
)

// Repository persists user accounts and their password verifiers.
type Repository interface {
	// Create inserts a new user. Returns common.ErrConflict when the
	// username is taken.
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)

	// GetByUsername returns the user or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
