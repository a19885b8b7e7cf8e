// Package cli implements the interactive notekeeper front end. It talks to
// the domain services in-process, against the same SQLite database the
// server uses.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"notekeeper/internal/cli/config"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/services"
	"notekeeper/internal/server/session"
	"notekeeper/internal/server/store"
)

type App struct {
	config   *config.Config
	users    *services.UserService
	notes    *services.NoteService
	todos    *services.TodoService
	folders  *services.FolderService
	stats    *services.StatsService
	token    string
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(io.Discard)

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	sessions := session.NewRegistry()

	return &App{
		config:  c,
		users:   services.NewUserService(db, sessions, logger),
		notes:   services.NewNoteService(db, sessions, logger),
		todos:   services.NewTodoService(db, sessions, logger),
		folders: services.NewFolderService(db, sessions, logger),
		stats:   services.NewStatsService(db, sessions),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
