package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
)

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret123"},
		{"blank username", "   ", "secret123"},
		{"username too short", "ab", "secret123"},
		{"username too long", strings.Repeat("a", 51), "secret123"},
		{"empty password", "alice", ""},
		{"blank password", "alice", "   "},
		{"password too short", "alice", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.users.Register(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_TrimsUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "  alice  ", "secret123"))

	// The trimmed name collides with the stored one.
	err := f.users.Register(ctx, "alice", "other-password")
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "alice", "secret123"))

	token, err := f.users.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token grants access to authenticated operations.
	_, err = f.stats.Get(ctx, token)
	assert.NoError(t, err)

	require.NoError(t, f.users.Logout(ctx, token))

	_, err = f.stats.Get(ctx, token)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestLogin_BadCredentialsAreUniform(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "alice", "secret123"))

	_, errUnknown := f.users.Login(ctx, "nobody", "secret123")
	_, errWrongPw := f.users.Login(ctx, "alice", "wrong-password")

	assert.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error(),
		"unknown user and wrong password must be indistinguishable")
}

func TestLogout_UnknownToken(t *testing.T) {
	f := newFixture(t)

	err := f.users.Logout(context.Background(), "bogus")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestPasswordIsNotStoredInPlaintext(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "alice", "secret123"))

	var hash string
	require.NoError(t, f.db.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, "alice").Scan(&hash))
	assert.NotContains(t, hash, "secret123")
}

func TestSessions_IndependentPerLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "alice", "secret123"))

	t1, err := f.users.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	t2, err := f.users.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	require.NoError(t, f.users.Logout(ctx, t1))

	_, err = f.stats.Get(ctx, t2)
	assert.NoError(t, err, "logout of one session must not invalidate the other")
}
