// Package httpapi exposes the domain services over a thin JSON HTTP API.
// Every response uses the same envelope; typed service errors are mapped to
// HTTP statuses here and nowhere else.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"notekeeper/internal/common"
)

// envelope is the uniform response shape of the API.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

// fail converts a service error into the envelope. Expected failures keep
// their message; anything else is reported generically so internal errors
// never leak to the caller.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	message := op + " failed"

	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, common.ErrNotAuthenticated), errors.Is(err, common.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, common.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	default:
		s.logger.Error(r.Context(), "operation failed", "op", op, "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

// decode parses the JSON request body into dst.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrValidation)
	}
	return nil
}
