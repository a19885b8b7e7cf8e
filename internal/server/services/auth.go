// Package services contains the domain operations facade. Every
// authenticated operation resolves its session token to a user id, validates
// and normalizes the caller's input, delegates to the repositories, and
// reports expected failures through the sentinel errors in internal/common.
package services

import (
	"context"
	"errors"
	"fmt"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

// authorizer resolves session tokens to user records. Token absence,
// an unknown token, and a dangling username all collapse into
// common.ErrNotAuthenticated so callers cannot probe session state.
type authorizer struct {
	sessions *session.Registry
	users    users.Repository
}

func (a *authorizer) currentUser(ctx context.Context, token string) (*models.User, error) {
	username, ok := a.sessions.Resolve(token)
	if !ok {
		return nil, common.ErrNotAuthenticated
	}

	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	return u, nil
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}
