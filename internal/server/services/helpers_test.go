package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/session"
	"notekeeper/internal/server/store"
)

// fixture wires every service against one in-memory database and one
// session registry, mirroring the production wiring.
type fixture struct {
	db       *sql.DB
	sessions *session.Registry
	users    *UserService
	notes    *NoteService
	todos    *TodoService
	folders  *FolderService
	stats    *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sessions := session.NewRegistry()
	logger := logging.NewJSON(io.Discard)

	return &fixture{
		db:       db,
		sessions: sessions,
		users:    NewUserService(db, sessions, logger),
		notes:    NewNoteService(db, sessions, logger),
		todos:    NewTodoService(db, sessions, logger),
		folders:  NewFolderService(db, sessions, logger),
		stats:    NewStatsService(db, sessions),
	}
}

// login registers username with a fixed password and returns a fresh
// session token.
func (f *fixture) login(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, username, "secret123"))
	token, err := f.users.Login(ctx, username, "secret123")
	require.NoError(t, err)
	return token
}
