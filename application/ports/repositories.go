package ports

import (
	"context"

	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
	"paperplay-backend/domain/events"
)

// SessionRepository is the injectable store for the active-session set.
// Implementations must serialize mutations per session ID so that the
// shallow-merge update semantics never lose writes.
type SessionRepository interface {
	// Save adds a newly created session to the active set
	Save(ctx context.Context, session *entities.GameSession) error

	// Get retrieves an active session; not-found when absent or ended
	Get(ctx context.Context, id valueobjects.SessionID) (*entities.GameSession, error)

	// Mutate runs fn with exclusive access to the session.
	// Returns not-found when the session is absent.
	Mutate(ctx context.Context, id valueobjects.SessionID, fn func(*entities.GameSession) error) error

	// Claim atomically removes the session from the active set and
	// returns it; the second claim of the same ID is not-found.
	Claim(ctx context.Context, id valueobjects.SessionID) (*entities.GameSession, error)
}

// GameRepository persists processed papers with their generated games.
type GameRepository interface {
	// Save persists a processed paper under its game ID
	Save(ctx context.Context, paper *entities.ProcessedPaper) error

	// GetByID retrieves a processed paper
	GetByID(ctx context.Context, gameID string) (*entities.ProcessedPaper, error)
}

// ProgressRepository persists per-user, per-game progress and awarded
// achievements. Records are only ever updated additively.
type ProgressRepository interface {
	// Get retrieves one user's progress for one game; not-found when absent
	Get(ctx context.Context, userID, gameID string) (*entities.UserProgress, error)

	// ListByUser retrieves all progress records for a user
	ListByUser(ctx context.Context, userID string) ([]*entities.UserProgress, error)

	// Apply runs fn against the user's record for the game, creating it
	// with create() when absent, and persists the result.
	Apply(ctx context.Context, userID, gameID string, create func() *entities.UserProgress, fn func(*entities.UserProgress)) error
}

// EventPublisher publishes domain events to interested collaborators.
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
