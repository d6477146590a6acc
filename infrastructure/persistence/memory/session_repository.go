package memory

import (
	"context"
	"sync"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
	pkgerrors "paperplay-backend/pkg/errors"
)

// SessionRepository keeps the active-session set in process memory.
// Sessions are transient by nature, so this is the production store,
// not a test double: a restart dropping active sessions is accepted.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*entities.GameSession
}

// NewSessionRepository creates an empty session store
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entities.GameSession),
	}
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

// Save adds a session to the active set
func (r *SessionRepository) Save(ctx context.Context, session *entities.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := session.ID().String()
	if _, exists := r.sessions[key]; exists {
		return pkgerrors.NewConflictError("session already exists: " + key)
	}
	r.sessions[key] = session
	return nil
}

// Get retrieves an active session
func (r *SessionRepository) Get(ctx context.Context, id valueobjects.SessionID) (*entities.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id.String()]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("session " + id.String())
	}
	return session, nil
}

// Mutate runs fn with the store lock held, serializing concurrent
// updates to the same session.
func (r *SessionRepository) Mutate(ctx context.Context, id valueobjects.SessionID, fn func(*entities.GameSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id.String()]
	if !exists {
		return pkgerrors.NewNotFoundError("session " + id.String())
	}
	return fn(session)
}

// Claim removes the session from the active set and returns it.
// Exactly one of two concurrent claims succeeds.
func (r *SessionRepository) Claim(ctx context.Context, id valueobjects.SessionID) (*entities.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	session, exists := r.sessions[key]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("session " + key)
	}
	delete(r.sessions, key)
	return session, nil
}
