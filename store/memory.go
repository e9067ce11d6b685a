package store

import (
	"sync"

	"bistro-chat-api/models"
)

// MemoryStore is an in-memory ProfileStore for tests and demos
type MemoryStore struct {
	mu      sync.Mutex
	profile *models.UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, nil
	}
	copied := *s.profile
	return &copied, nil
}

func (s *MemoryStore) Save(profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *profile
	s.profile = &copied
	return nil
}
