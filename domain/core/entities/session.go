package entities

import (
	"sync"
	"time"

	"paperplay-backend/domain/core/valueobjects"
	"paperplay-backend/domain/games"
	pkgerrors "paperplay-backend/pkg/errors"
)

// SessionStatus represents the lifecycle state of a game session.
// Sessions only move forward: Active -> Ended. There is no pause state.
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

// SessionState is the mutable progress record of an active session.
// Field names form the wire contract with the presentation layer.
type SessionState struct {
	CurrentStage   int            `json:"current_stage"`
	Points         int            `json:"points"`
	CompletedTasks []string       `json:"completed_tasks"`
	Discoveries    []string       `json:"discoveries"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        *time.Time     `json:"end_time,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// StateUpdate carries a shallow merge into SessionState: nil pointers leave
// the current value untouched, non-nil pointers overwrite it wholesale.
type StateUpdate struct {
	CurrentStage   *int      `json:"current_stage,omitempty"`
	Points         *int      `json:"points,omitempty"`
	CompletedTasks *[]string `json:"completed_tasks,omitempty"`
	Discoveries    *[]string `json:"discoveries,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// Achievement is a named award granted when a finished session satisfies
// a rule. Achievements are immutable once awarded and may repeat across
// sessions; there is no idempotence guarantee.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// FinalState is the immutable summary produced when a session ends.
type FinalState struct {
	GameID               string        `json:"game_id"`
	Type                 games.GameType `json:"type"`
	FinalScore           int           `json:"final_score"`
	CompletionPercentage float64       `json:"completion_percentage"`
	TimeSpentSeconds     float64       `json:"time_spent_seconds"`
	Discoveries          []string      `json:"discoveries"`
	Achievements         []Achievement `json:"achievements"`
}

// GameSession is one instance of a user playing a game, with mutable
// progress state. The session guards its own state, so readers holding
// a reference from the repository stay safe against concurrent updates.
type GameSession struct {
	id       valueobjects.SessionID
	gameID   string
	gameType games.GameType
	content  map[string]any

	mu     sync.RWMutex
	state  SessionState
	status SessionStatus
}

// NewGameSession creates a session in the Active state with zeroed counters.
func NewGameSession(gameID string, gameType games.GameType, content map[string]any, startedAt time.Time) (*GameSession, error) {
	if !gameType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown game type: " + string(gameType))
	}
	id, err := valueobjects.NewSessionID(gameID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	return &GameSession{
		id:       id,
		gameID:   gameID,
		gameType: gameType,
		content:  content,
		state: SessionState{
			CompletedTasks: []string{},
			Discoveries:    []string{},
			StartTime:      startedAt,
		},
		status: SessionActive,
	}, nil
}

// ReconstructGameSession rebuilds a session from persisted data.
func ReconstructGameSession(
	id valueobjects.SessionID,
	gameType games.GameType,
	content map[string]any,
	state SessionState,
	status SessionStatus,
) *GameSession {
	return &GameSession{
		id:       id,
		gameID:   id.GameID(),
		gameType: gameType,
		content:  content,
		state:    state,
		status:   status,
	}
}

// ID returns the session identifier
func (s *GameSession) ID() valueobjects.SessionID {
	return s.id
}

// GameID returns the game this session plays
func (s *GameSession) GameID() string {
	return s.gameID
}

// Type returns the game type of this session
func (s *GameSession) Type() games.GameType {
	return s.gameType
}

// Content returns the game payload the session was instantiated from
func (s *GameSession) Content() map[string]any {
	return s.content
}

// Status returns the lifecycle state
func (s *GameSession) Status() SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// State returns a copy of the current progress record. Reading twice
// without an intervening update yields identical state.
func (s *GameSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.CompletedTasks = append([]string(nil), s.state.CompletedTasks...)
	state.Discoveries = append([]string(nil), s.state.Discoveries...)
	if s.state.Extra != nil {
		state.Extra = make(map[string]any, len(s.state.Extra))
		for k, v := range s.state.Extra {
			state.Extra[k] = v
		}
	}
	return state
}

// ApplyUpdate shallow-merges an update into the session state.
// Fails when the session already ended.
func (s *GameSession) ApplyUpdate(update StateUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != SessionActive {
		return pkgerrors.NewNotFoundError("active session")
	}
	if update.CurrentStage != nil {
		s.state.CurrentStage = *update.CurrentStage
	}
	if update.Points != nil {
		s.state.Points = *update.Points
	}
	if update.CompletedTasks != nil {
		s.state.CompletedTasks = append([]string(nil), (*update.CompletedTasks)...)
	}
	if update.Discoveries != nil {
		s.state.Discoveries = append([]string(nil), (*update.Discoveries)...)
	}
	for k, v := range update.Extra {
		if s.state.Extra == nil {
			s.state.Extra = make(map[string]any)
		}
		s.state.Extra[k] = v
	}
	return nil
}

// TotalTasks counts the tasks declared by the game content.
func (s *GameSession) TotalTasks() int {
	tasks, ok := s.content["tasks"]
	if !ok {
		return 0
	}
	if list, ok := tasks.([]any); ok {
		return len(list)
	}
	if list, ok := tasks.([]string); ok {
		return len(list)
	}
	return 0
}

// End transitions the session to Ended and computes the final summary.
// Achievements are left empty; the caller runs the rule engine over the
// returned snapshot. Ending twice is rejected.
func (s *GameSession) End(at time.Time) (*FinalState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != SessionActive {
		return nil, pkgerrors.NewNotFoundError("active session")
	}
	s.status = SessionEnded
	endTime := at
	s.state.EndTime = &endTime

	// Clients may report more completed tasks than the game declares;
	// completion stays within [0, 100] regardless.
	completion := 0.0
	if total := s.TotalTasks(); total > 0 {
		completion = float64(len(s.state.CompletedTasks)) / float64(total) * 100
		if completion > 100 {
			completion = 100
		}
	}

	return &FinalState{
		GameID:               s.gameID,
		Type:                 s.gameType,
		FinalScore:           s.state.Points,
		CompletionPercentage: completion,
		TimeSpentSeconds:     endTime.Sub(s.state.StartTime).Seconds(),
		Discoveries:          append([]string(nil), s.state.Discoveries...),
		Achievements:         []Achievement{},
	}, nil
}
