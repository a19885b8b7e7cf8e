package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notekeeper/internal/server/models"
	"notekeeper/internal/server/services"
)

type createTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	NoteTitle   string   `json:"note_title"`
}

func todoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validationError("id must be an integer")
	}
	return id, nil
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "create todo", err)
		return
	}

	id, err := s.todos.Create(r.Context(), token(r), services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Tags:        req.Tags,
		NoteTitle:   req.NoteTitle,
	})
	if err != nil {
		s.fail(w, r, "create todo", err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]int64{"id": id}, "todo created")
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TodoFilter{
		Status:    q.Get("status"),
		Tag:       q.Get("tag"),
		Priority:  q.Get("priority"),
		NoteTitle: q.Get("note"),
	}

	todos, err := s.todos.List(r.Context(), token(r), filter)
	if err != nil {
		s.fail(w, r, "list todos", err)
		return
	}
	s.respond(w, http.StatusOK, todos, "")
}

func (s *Server) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		s.fail(w, r, "toggle todo", err)
		return
	}

	if err := s.todos.Toggle(r.Context(), token(r), id); err != nil {
		s.fail(w, r, "toggle todo", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "todo toggled")
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		s.fail(w, r, "delete todo", err)
		return
	}

	if err := s.todos.Delete(r.Context(), token(r), id); err != nil {
		s.fail(w, r, "delete todo", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "todo deleted")
}
