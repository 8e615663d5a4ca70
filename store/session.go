// Package store file: store/session.go
package store

import (
	"sync"

	"memberhub/models"
)

// ----------------------- session state -----------------------

// SessionState tracks one browser session's authentication lifecycle: the
// signed-in user, whether the first rehydration attempt has completed, and
// the status of the latest auth operation.
//
// Initialized latches true exactly once, after the first rehydration attempt
// finishes (success or failure), and never reverts. The route guard blocks
// all protected rendering until then.
type SessionState struct {
	mu          sync.Mutex
	user        *models.User
	initialized bool
	loading     bool
	err         string
	rehydrating bool
}

// SessionSnapshot is a consistent read of a SessionState.
type SessionSnapshot struct {
	User        *models.User
	Initialized bool
	Loading     bool
	Error       string
}

// NewSessionState returns a fresh, uninitialized session state.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// LoginStart marks a login attempt in flight and clears any previous error.
func (s *SessionState) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// LoginSuccess stores the authenticated user.
func (s *SessionState) LoginSuccess(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.user = &user
}

// LoginFailure records the failure and drops any user.
func (s *SessionState) LoginFailure(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = message
	s.user = nil
}

// Logout clears the user and both status fields. Initialized stays true.
func (s *SessionState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.loading = false
	s.err = ""
}

// BeginRehydrate marks a rehydration attempt in flight. It returns false when
// one is already running or the state is already initialized, so concurrent
// guarded requests trigger at most one profile call.
func (s *SessionState) BeginRehydrate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rehydrating || s.initialized {
		return false
	}
	s.rehydrating = true
	s.loading = true
	return true
}

// RehydrateSuccess installs the restored user and latches initialized.
func (s *SessionState) RehydrateSuccess(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.initialized = true
	s.loading = false
	s.err = ""
	s.rehydrating = false
}

// RehydrateFailure latches initialized without a user. The failure itself is
// not surfaced: an expired upstream cookie simply means "not signed in".
func (s *SessionState) RehydrateFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
	s.loading = false
	s.rehydrating = false
}

// Snapshot returns a consistent copy of the state.
func (s *SessionState) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SessionSnapshot{
		Initialized: s.initialized,
		Loading:     s.loading,
		Error:       s.err,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// ----------------------- session registry -----------------------

// SessionRegistry maps console session ids to their auth state. One instance
// lives for the process; entries are created lazily on first sight of an id.
type SessionRegistry struct {
	mu     sync.Mutex
	states map[string]*SessionState
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{states: make(map[string]*SessionState)}
}

// Get returns the state for id, creating it when unseen.
func (r *SessionRegistry) Get(id string) *SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[id]
	if !ok {
		state = NewSessionState()
		r.states[id] = state
	}
	return state
}

// Drop forgets the state for id. Called on logout so a later visit with the
// same console cookie starts a fresh lifecycle.
func (r *SessionRegistry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, id)
}

// Len reports the number of tracked sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Range calls fn for every tracked session.
func (r *SessionRegistry) Range(fn func(id string, state *SessionState)) {
	r.mu.Lock()
	states := make(map[string]*SessionState, len(r.states))
	for id, state := range r.states {
		states[id] = state
	}
	r.mu.Unlock()

	for id, state := range states {
		fn(id, state)
	}
}

// Reset forgets every session. Test hook.
func (r *SessionRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = make(map[string]*SessionState)
}
