package queries

import (
	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"
)

// GetUserProgressQuery retrieves a user's progress records plus
// aggregate statistics across them. A non-empty GameID narrows the
// result to that single game.
type GetUserProgressQuery struct {
	UserID string `json:"user_id" validate:"required"`
	GameID string `json:"game_id,omitempty"`
}

// Validate implements the Query interface
func (q GetUserProgressQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	return nil
}

// ProgressStats aggregates across all of a user's games
type ProgressStats struct {
	TotalGames         int                    `json:"total_games"`
	CompletedGames     int                    `json:"completed_games"`
	TotalPoints        int                    `json:"total_points"`
	RecentAchievements []entities.Achievement `json:"recent_achievements"`
}

// GetUserProgressResult contains the per-game records and the aggregate
type GetUserProgressResult struct {
	UserID  string                   `json:"user_id"`
	Records []*entities.UserProgress `json:"records"`
	Stats   ProgressStats            `json:"stats"`
}
