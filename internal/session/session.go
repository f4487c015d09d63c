package session

import (
	"sync"

	"github.com/google/uuid"
)

// State is the per-browsing-session selection: which category and artisan
// are open and what the active search term is. Values are replaced
// verbatim by updates; the query layer interprets them.
type State struct {
	ID               string `json:"id"`
	SelectedCategory string `json:"selected_category,omitempty"`
	SelectedArtisan  string `json:"selected_artisan,omitempty"`
	SearchTerm       string `json:"search_term,omitempty"`
}

// Update carries replacement values for a session. Nil fields leave the
// current value untouched, so callers can update a single field.
type Update struct {
	SelectedCategory *string `json:"selected_category"`
	SelectedArtisan  *string `json:"selected_artisan"`
	SearchTerm       *string `json:"search_term"`
}

// Manager owns all live sessions. Sessions are memory-only and vanish at
// process exit; there is no cross-session sharing.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]State)}
}

// Create registers a fresh empty session and returns its state.
func (m *Manager) Create() State {
	st := State{ID: uuid.NewString()}
	m.mu.Lock()
	m.sessions[st.ID] = st
	m.mu.Unlock()
	return st
}

// Get returns a snapshot of the session, or false if it does not exist.
func (m *Manager) Get(id string) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[id]
	return st, ok
}

// Apply replaces the fields named in the update and returns the new
// snapshot. Unknown sessions return false.
func (m *Manager) Apply(id string, u Update) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return State{}, false
	}
	if u.SelectedCategory != nil {
		st.SelectedCategory = *u.SelectedCategory
	}
	if u.SelectedArtisan != nil {
		st.SelectedArtisan = *u.SelectedArtisan
	}
	if u.SearchTerm != nil {
		st.SearchTerm = *u.SearchTerm
	}
	m.sessions[id] = st
	return st, true
}

// Delete discards a session. Deleting an unknown session is a no-op that
// reports false.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
