package queries

import (
	pkgerrors "paperplay-backend/pkg/errors"
)

// GetGameQuery retrieves a processed paper with its generated games
type GetGameQuery struct {
	GameID string `json:"game_id" validate:"required"`
}

// Validate implements the Query interface
func (q GetGameQuery) Validate() error {
	if q.GameID == "" {
		return pkgerrors.NewValidationError("game ID is required")
	}
	return nil
}
