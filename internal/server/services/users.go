package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"notekeeper/internal/common"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/auth"
	"notekeeper/internal/server/repositories/users"
	"notekeeper/internal/server/session"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 3
)

// UserService implements account registration and the session lifecycle:
// register, login (mint token), logout (destroy token).
type UserService struct {
	users    users.Repository
	sessions *session.Registry
	logger   logging.Logger
}

func NewUserService(db *sql.DB, sessions *session.Registry, logger logging.Logger) *UserService {
	return &UserService{
		users:    users.NewSQLiteRepository(db),
		sessions: sessions,
		logger:   logger.With("module", "users"),
	}
}

// Register creates a new account. The plaintext password is hashed before
// storage and never logged.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return validationError("username is required")
	}
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return validationError(fmt.Sprintf("username must be %d-%d characters", minUsernameLen, maxUsernameLen))
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return validationError("password is required")
	}
	if len(password) < minPasswordLen {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, username, hash); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return fmt.Errorf("%w: username is taken", common.ErrConflict)
		}
		return err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Login verifies the credentials and returns a fresh session token. The
// same message covers unknown usernames and wrong passwords.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", validationError("username and password are required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", common.ErrInvalidCredentials
	}

	token := s.sessions.Create(username)
	s.logger.Info(ctx, "user logged in", "username", username)
	return token, nil
}

// Logout destroys the session. Unknown tokens report not-authenticated,
// indistinguishable from tokens that were already destroyed.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if !s.sessions.Destroy(token) {
		return common.ErrNotAuthenticated
	}
	return nil
}
