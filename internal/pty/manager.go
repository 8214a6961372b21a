package pty

import (
	"fmt"
	"sync"
)

// Manager owns the set of live sessions for one Backend and is the entry
// point the workspace/command layers use to create and look up terminal
// sessions by ID, instead of reaching into Backend directly.
type Manager struct {
	backend Backend
	idFunc  func() string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager backed by backend, generating session IDs
// with idFunc.
func NewManager(backend Backend, idFunc func() string) *Manager {
	return &Manager{
		backend:  backend,
		idFunc:   idFunc,
		sessions: make(map[string]*Session),
	}
}

// Open starts a new session running command with args in cwd, sized
// rows×cols, and registers it under a freshly generated ID.
func (m *Manager) Open(command string, args []string, cwd string, rows, cols uint16) (*Session, error) {
	session := newSession(m.idFunc(), command, args, cwd, rows, cols)
	if err := m.backend.StartProcess(session); err != nil {
		return nil, fmt.Errorf("start process: %w", err)
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session, nil
}

// Get returns the session with the given ID, or nil if none is registered.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Close terminates and releases the session with the given ID.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return m.backend.Cleanup(session)
}

// CloseAll tears down every live session, used on process shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		_ = m.backend.Cleanup(s)
	}
}

// Backend exposes the underlying Backend for direct read/write/resize calls.
func (m *Manager) Backend() Backend {
	return m.backend
}
