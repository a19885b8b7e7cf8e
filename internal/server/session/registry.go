// Package session maps opaque tokens to authenticated usernames for the
// lifetime of the process. Nothing is persisted: restarting the server
// invalidates every session, and there is no expiry beyond explicit logout.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is a concurrency-safe token → username map. Construct instances
// explicitly (no package-level singleton) so tests can run in isolation.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]string)}
}

// Create registers a new session for username and returns its token, a v4
// UUID. Each login gets its own token; concurrent sessions per user are
// allowed.
func (r *Registry) Create(username string) string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = username

	return token
}

// Resolve returns the username bound to token, if any.
func (r *Registry) Resolve(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	username, ok := r.sessions[token]
	return username, ok
}

// Destroy removes a session and reports whether one existed. Idempotent.
func (r *Registry) Destroy(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[token]
	delete(r.sessions, token)
	return ok
}
