package httpapi

import "net/http"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "register", err)
		return
	}

	if err := s.users.Register(r.Context(), req.Username, req.Password); err != nil {
		s.fail(w, r, "register", err)
		return
	}

	s.respond(w, http.StatusCreated, nil, "user registered successfully")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "login", err)
		return
	}

	tok, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(w, r, "login", err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"session_token": tok}, "login successful")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Logout(r.Context(), token(r)); err != nil {
		s.fail(w, r, "logout", err)
		return
	}
	s.respond(w, http.StatusOK, nil, "logged out")
}
