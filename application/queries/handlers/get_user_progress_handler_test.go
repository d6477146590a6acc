package handlers

import (
	"context"
	"testing"
	"time"

	"paperplay-backend/application/queries"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/infrastructure/persistence/memory"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProgress(t *testing.T, repo *memory.ProgressRepository, gameID string, points int, completion float64, achievements ...entities.Achievement) {
	t.Helper()
	err := repo.Apply(context.Background(), "user-1", gameID, func() *entities.UserProgress {
		return entities.NewUserProgress("user-1", gameID, "quiz", time.Now())
	}, func(p *entities.UserProgress) {
		p.TotalPoints = points
		p.CompletionPercentage = completion
		p.Achievements = achievements
	})
	require.NoError(t, err)
}

func TestGetUserProgressHandler_AggregatesAcrossGames(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProgress(t, repo, "game-a", 400, 100,
		entities.Achievement{ID: "speed_demon", Timestamp: base.Add(1 * time.Hour)},
		entities.Achievement{ID: "explorer", Timestamp: base.Add(5 * time.Hour)},
	)
	seedProgress(t, repo, "game-b", 700, 50,
		entities.Achievement{ID: "point_master", Timestamp: base.Add(3 * time.Hour)},
	)

	handler := NewGetUserProgressHandler(repo, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, queries.GetUserProgressQuery{UserID: "user-1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, 2, result.Stats.TotalGames)
	assert.Equal(t, 1, result.Stats.CompletedGames)
	assert.Equal(t, 1100, result.Stats.TotalPoints)
	// Achievements across games, ordered by award time
	require.Len(t, result.Stats.RecentAchievements, 3)
	assert.Equal(t, "speed_demon", result.Stats.RecentAchievements[0].ID)
	assert.Equal(t, "point_master", result.Stats.RecentAchievements[1].ID)
	assert.Equal(t, "explorer", result.Stats.RecentAchievements[2].ID)
}

func TestGetUserProgressHandler_KeepsOnlyMostRecentAchievements(t *testing.T) {
	// Arrange: eight awards, only the last five survive
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	awards := make([]entities.Achievement, 0, 8)
	for i := 0; i < 8; i++ {
		awards = append(awards, entities.Achievement{ID: "explorer", Timestamp: base.Add(time.Duration(i) * time.Hour)})
	}
	seedProgress(t, repo, "game-a", 0, 0, awards...)

	handler := NewGetUserProgressHandler(repo, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, queries.GetUserProgressQuery{UserID: "user-1"})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Stats.RecentAchievements, 5)
	assert.Equal(t, base.Add(3*time.Hour), result.Stats.RecentAchievements[0].Timestamp)
	assert.Equal(t, base.Add(7*time.Hour), result.Stats.RecentAchievements[4].Timestamp)
}

func TestGetUserProgressHandler_EmptyUserGetsEmptyResult(t *testing.T) {
	handler := NewGetUserProgressHandler(memory.NewProgressRepository(), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetUserProgressQuery{UserID: "nobody"})

	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Zero(t, result.Stats.TotalGames)
	assert.Empty(t, result.Stats.RecentAchievements)
}

func TestGetUserProgressHandler_RejectsMissingUserID(t *testing.T) {
	handler := NewGetUserProgressHandler(memory.NewProgressRepository(), zap.NewNop())

	_, err := handler.Handle(context.Background(), queries.GetUserProgressQuery{})

	assert.True(t, pkgerrors.IsValidation(err))
}

func TestGetUserProgressHandler_FiltersBySingleGame(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	seedProgress(t, repo, "game-a", 400, 100)
	seedProgress(t, repo, "game-b", 700, 50)
	handler := NewGetUserProgressHandler(repo, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, queries.GetUserProgressQuery{UserID: "user-1", GameID: "game-b"})

	// Assert: only the requested game, stats computed over it alone
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "game-b", result.Records[0].GameID)
	assert.Equal(t, 1, result.Stats.TotalGames)
	assert.Equal(t, 0, result.Stats.CompletedGames)
	assert.Equal(t, 700, result.Stats.TotalPoints)
}

func TestGetUserProgressHandler_FilterMissingGameNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	seedProgress(t, repo, "game-a", 400, 100)
	handler := NewGetUserProgressHandler(repo, zap.NewNop())

	// Act
	_, err := handler.Handle(ctx, queries.GetUserProgressQuery{UserID: "user-1", GameID: "game-z"})

	// Assert
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}
