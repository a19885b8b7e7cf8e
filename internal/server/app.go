// Package server initializes and runs the notekeeper server.
// It opens the SQLite store, applies migrations, wires the domain services,
// handles graceful shutdown, and starts the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/config"
	"notekeeper/internal/server/httpapi"
	"notekeeper/internal/server/services"
	"notekeeper/internal/server/session"
	"notekeeper/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessions := session.NewRegistry()

	us := services.NewUserService(db, sessions, logger)
	ns := services.NewNoteService(db, sessions, logger)
	ts := services.NewTodoService(db, sessions, logger)
	fs := services.NewFolderService(db, sessions, logger)
	ss := services.NewStatsService(db, sessions)

	api := httpapi.NewServer(cfg.Addr, logger, us, ns, ts, fs, ss)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "db", app.config.DatabasePath)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}
}
