package handlers

import (
	"context"
	"sort"

	"paperplay-backend/application/ports"
	"paperplay-backend/application/queries"
	"paperplay-backend/domain/core/entities"

	"go.uber.org/zap"
)

const recentAchievementLimit = 5

// GetUserProgressHandler handles user progress queries
type GetUserProgressHandler struct {
	progress ports.ProgressRepository
	logger   *zap.Logger
}

// NewGetUserProgressHandler creates a new progress query handler
func NewGetUserProgressHandler(progress ports.ProgressRepository, logger *zap.Logger) *GetUserProgressHandler {
	return &GetUserProgressHandler{
		progress: progress,
		logger:   logger,
	}
}

// Handle executes the progress query. A user with no records gets an
// empty result, not an error; a GameID filter that matches nothing is
// a not-found error, since the caller asked for one specific record.
func (h *GetUserProgressHandler) Handle(ctx context.Context, query queries.GetUserProgressQuery) (*queries.GetUserProgressResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var records []*entities.UserProgress
	if query.GameID != "" {
		record, err := h.progress.Get(ctx, query.UserID, query.GameID)
		if err != nil {
			return nil, err
		}
		records = []*entities.UserProgress{record}
	} else {
		listed, err := h.progress.ListByUser(ctx, query.UserID)
		if err != nil {
			return nil, err
		}
		records = listed
	}

	return &queries.GetUserProgressResult{
		UserID:  query.UserID,
		Records: records,
		Stats:   aggregateStats(records),
	}, nil
}

func aggregateStats(records []*entities.UserProgress) queries.ProgressStats {
	stats := queries.ProgressStats{
		TotalGames:         len(records),
		RecentAchievements: []entities.Achievement{},
	}

	all := make([]entities.Achievement, 0)
	for _, record := range records {
		stats.TotalPoints += record.TotalPoints
		if record.CompletionPercentage >= 100 {
			stats.CompletedGames++
		}
		all = append(all, record.Achievements...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.Before(all[j].Timestamp)
	})
	if len(all) > recentAchievementLimit {
		all = all[len(all)-recentAchievementLimit:]
	}
	stats.RecentAchievements = append(stats.RecentAchievements, all...)

	return stats
}
