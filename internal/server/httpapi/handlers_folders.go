package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type createFolderRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type renameFolderRequest struct {
	Name string `json:"name"`
}

type moveFolderRequest struct {
	ParentID *int64 `json:"parent_id"`
}

func folderID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validationError("id must be an integer")
	}
	return id, nil
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "create folder", err)
		return
	}

	id, err := s.folders.Create(r.Context(), token(r), req.Name, req.ParentID)
	if err != nil {
		s.fail(w, r, "create folder", err)
		return
	}
	s.respond(w, http.StatusCreated, map[string]int64{"id": id}, "folder created")
}

func (s *Server) handleFolderTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.folders.Tree(r.Context(), token(r))
	if err != nil {
		s.fail(w, r, "list folders", err)
		return
	}
	s.respond(w, http.StatusOK, tree, "")
}

func (s *Server) handleRenameFolder(w http.ResponseWriter, r *http.Request) {
	id, err := folderID(r)
	if err != nil {
		s.fail(w, r, "rename folder", err)
		return
	}

	var req renameFolderRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "rename folder", err)
		return
	}

	if err := s.folders.Rename(r.Context(), token(r), id, req.Name); err != nil {
		s.fail(w, r, "rename folder", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "folder renamed")
}

func (s *Server) handleMoveFolder(w http.ResponseWriter, r *http.Request) {
	id, err := folderID(r)
	if err != nil {
		s.fail(w, r, "move folder", err)
		return
	}

	var req moveFolderRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "move folder", err)
		return
	}

	if err := s.folders.Move(r.Context(), token(r), id, req.ParentID); err != nil {
		s.fail(w, r, "move folder", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "folder moved")
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := folderID(r)
	if err != nil {
		s.fail(w, r, "delete folder", err)
		return
	}

	if err := s.folders.Delete(r.Context(), token(r), id); err != nil {
		s.fail(w, r, "delete folder", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "folder deleted")
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Get(r.Context(), token(r))
	if err != nil {
		s.fail(w, r, "stats", err)
		return
	}
	s.respond(w, http.StatusOK, stats, "")
}
