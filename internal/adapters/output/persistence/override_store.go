package persistence

import (
	"sync"

	"emulated-hue/internal/domain/model"
)

// MemoryOverrideStore is an in-memory override store (not persisted).
type MemoryOverrideStore struct {
	entries map[string]model.HueState
	mu      sync.RWMutex
}

func NewMemoryOverrideStore() *MemoryOverrideStore {
	return &MemoryOverrideStore{entries: make(map[string]model.HueState)}
}

func (s *MemoryOverrideStore) Get(entityID string) (model.HueState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.entries[entityID]
	return state, ok
}

func (s *MemoryOverrideStore) Put(entityID string, state model.HueState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entityID] = state
}

// Clear forgets every override.
func (s *MemoryOverrideStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]model.HueState)
}
