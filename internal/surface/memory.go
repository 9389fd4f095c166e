// Package surface keeps what has been delivered to each user's surface:
// the latest home view, the open form and direct messages.
package surface

import (
	"context"
	"sync"

	"todohome/internal/view"
)

// Memory is an in-process surface. Deliveries replace the previous home view
// and form of the user; messages accumulate.
type Memory struct {
	mu       sync.RWMutex
	homes    map[string]view.Home
	forms    map[string]view.Form
	messages map[string][]string
}

// NewMemory returns an empty surface.
func NewMemory() *Memory {
	return &Memory{
		homes:    make(map[string]view.Home),
		forms:    make(map[string]view.Form),
		messages: make(map[string][]string),
	}
}

// PublishHome replaces the home view of userID.
func (m *Memory) PublishHome(_ context.Context, userID string, h view.Home) error {
	m.mu.Lock()
	m.homes[userID] = h
	m.mu.Unlock()
	return nil
}

// OpenForm replaces the open form of userID.
func (m *Memory) OpenForm(_ context.Context, userID string, f view.Form) error {
	m.mu.Lock()
	m.forms[userID] = f
	m.mu.Unlock()
	return nil
}

// CloseForm dismisses the open form of userID, if any.
func (m *Memory) CloseForm(_ context.Context, userID string) error {
	m.mu.Lock()
	delete(m.forms, userID)
	m.mu.Unlock()
	return nil
}

// Notify appends a direct message for userID.
func (m *Memory) Notify(_ context.Context, userID, text string) error {
	m.mu.Lock()
	m.messages[userID] = append(m.messages[userID], text)
	m.mu.Unlock()
	return nil
}

// Home returns the last home view delivered to userID.
func (m *Memory) Home(userID string) (view.Home, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.homes[userID]
	return h, ok
}

// Form returns the form currently open for userID.
func (m *Memory) Form(userID string) (view.Form, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.forms[userID]
	return f, ok
}

// Messages returns a copy of the messages sent to userID, oldest first.
func (m *Memory) Messages(userID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.messages[userID]...)
}
