package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type createNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID *int64 `json:"folder_id,omitempty"`
}

type updateNoteRequest struct {
	Content  *string `json:"content,omitempty"`
	NewTitle *string `json:"new_title,omitempty"`
}

type setFolderRequest struct {
	FolderID *int64 `json:"folder_id"`
}

type tagsRequest struct {
	Tags []string `json:"tags"`
}

// noteTitle returns the {title} path parameter. Chi keeps it URL-encoded,
// so titles with spaces or slashes round-trip.
func noteTitle(r *http.Request) string {
	raw := chi.URLParam(r, "title")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "create note", err)
		return
	}

	id, err := s.notes.Create(r.Context(), token(r), req.Title, req.Content, req.FolderID)
	if err != nil {
		s.fail(w, r, "create note", err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]int64{"id": id}, "note created")
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.Get(r.Context(), token(r), noteTitle(r))
	if err != nil {
		s.fail(w, r, "get note", err)
		return
	}
	s.respond(w, http.StatusOK, note, "")
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(w, r, "list notes", validationError("limit must be an integer"))
			return
		}
		limit = n
	}

	previews, err := s.notes.List(r.Context(), token(r), limit)
	if err != nil {
		s.fail(w, r, "list notes", err)
		return
	}
	s.respond(w, http.StatusOK, previews, "")
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "update note", err)
		return
	}

	if err := s.notes.Update(r.Context(), token(r), noteTitle(r), req.Content, req.NewTitle); err != nil {
		s.fail(w, r, "update note", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "note updated")
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.notes.Delete(r.Context(), token(r), noteTitle(r)); err != nil {
		s.fail(w, r, "delete note", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "note deleted")
}

func (s *Server) handleSearchNotes(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if decoded, err := url.PathUnescape(query); err == nil {
		query = decoded
	}

	previews, err := s.notes.Search(r.Context(), token(r), query)
	if err != nil {
		s.fail(w, r, "search notes", err)
		return
	}
	s.respond(w, http.StatusOK, previews, "")
}

func (s *Server) handleAddTags(w http.ResponseWriter, r *http.Request) {
	var req tagsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "add tags", err)
		return
	}

	tags, err := s.notes.AddTags(r.Context(), token(r), noteTitle(r), req.Tags)
	if err != nil {
		s.fail(w, r, "add tags", err)
		return
	}
	s.respond(w, http.StatusOK, map[string][]string{"tags": tags}, "tags added")
}

func (s *Server) handleSetNoteFolder(w http.ResponseWriter, r *http.Request) {
	var req setFolderRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "set note folder", err)
		return
	}

	if err := s.notes.SetFolder(r.Context(), token(r), noteTitle(r), req.FolderID); err != nil {
		s.fail(w, r, "set note folder", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "note moved")
}
