package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/services"
)

// Server wires the domain services into an HTTP API.
type Server struct {
	addr    string
	logger  logging.Logger
	users   *services.UserService
	notes   *services.NoteService
	todos   *services.TodoService
	folders *services.FolderService
	stats   *services.StatsService
}

func NewServer(addr string, logger logging.Logger,
	us *services.UserService, ns *services.NoteService, ts *services.TodoService,
	fs *services.FolderService, ss *services.StatsService) *Server {
	return &Server{
		addr:    addr,
		logger:  logger.With("module", "httpapi"),
		users:   us,
		notes:   ns,
		todos:   ts,
		folders: fs,
		stats:   ss,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", s.handleListNotes)
			r.Post("/", s.handleCreateNote)
			r.Get("/search/{query}", s.handleSearchNotes)
			r.Get("/{title}", s.handleGetNote)
			r.Put("/{title}", s.handleUpdateNote)
			r.Delete("/{title}", s.handleDeleteNote)
			r.Post("/{title}/tags", s.handleAddTags)
			r.Put("/{title}/folder", s.handleSetNoteFolder)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.handleListTodos)
			r.Post("/", s.handleCreateTodo)
			r.Post("/{id}/toggle", s.handleToggleTodo)
			r.Delete("/{id}", s.handleDeleteTodo)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", s.handleFolderTree)
			r.Post("/", s.handleCreateFolder)
			r.Put("/{id}", s.handleRenameFolder)
			r.Put("/{id}/move", s.handleMoveFolder)
			r.Delete("/{id}", s.handleDeleteFolder)
		})

		r.Get("/stats", s.handleStats)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "starting HTTP server", "addr", s.addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// token extracts the bearer session token from the Authorization header.
// Missing or malformed headers yield "", which the services reject as
// not authenticated.
func token(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return ""
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "healthy"}, "notekeeper API is running")
}
