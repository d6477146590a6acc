package queries

import (
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
)

// GetSessionQuery retrieves the current state of an active session
type GetSessionQuery struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Validate implements the Query interface
func (q GetSessionQuery) Validate() error {
	_, err := valueobjects.ParseSessionID(q.SessionID)
	return err
}

// GetSessionResult contains the session snapshot
type GetSessionResult struct {
	SessionID string                `json:"session_id"`
	GameID    string                `json:"game_id"`
	GameType  string                `json:"game_type"`
	Status    string                `json:"status"`
	State     entities.SessionState `json:"state"`
}
