package session

import (
	"sync"

	"bistro-chat-api/models"

	"github.com/google/uuid"
)

// Registry tracks live sessions by ID. Each session serializes its own
// requests via its embedded mutex; the registry only guards the map.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create starts a fresh session with a generated ID
func (r *Registry) Create(lang models.Language) *Session {
	s := New(uuid.NewString(), lang)
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session for an ID, nil when unknown
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}
