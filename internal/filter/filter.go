// Package filter keeps the per-user home view filter for the lifetime of the process.
package filter

import (
	"fmt"
	"sync"

	"todohome/internal/models"
)

// Store maps user identities to their selected filter mode. Selections are
// not persisted; a new Store reports the default mode for everyone.
type Store struct {
	mu    sync.RWMutex
	modes map[string]models.FilterMode
}

// NewStore returns an empty filter store.
func NewStore() *Store {
	return &Store{modes: make(map[string]models.FilterMode)}
}

// Get returns the user's mode, or models.DefaultFilterMode when none was set.
func (s *Store) Get(userID string) models.FilterMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.modes[userID]; ok {
		return m
	}
	return models.DefaultFilterMode
}

// Set records the user's mode. Unknown modes are rejected with
// models.ErrInvalidFilter and the previous selection is kept.
func (s *Store) Set(userID string, mode models.FilterMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidFilter, mode)
	}
	s.mu.Lock()
	s.modes[userID] = mode
	s.mu.Unlock()
	return nil
}
