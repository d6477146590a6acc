package entities

import (
	"testing"
	"time"

	"paperplay-backend/domain/games"

	"github.com/stretchr/testify/assert"
)

func TestUserProgress_RecordSession_Accumulates(t *testing.T) {
	// Arrange
	progress := NewUserProgress("user-1", "game-1", "quiz", time.Now())
	first := &FinalState{
		GameID:               "game-1",
		Type:                 games.TypeQuiz,
		FinalScore:           400,
		CompletionPercentage: 60,
		Achievements:         []Achievement{{ID: "speed_demon"}},
	}
	second := &FinalState{
		GameID:               "game-1",
		Type:                 games.TypeQuiz,
		FinalScore:           700,
		CompletionPercentage: 40,
		Achievements:         []Achievement{{ID: "speed_demon"}, {ID: "point_master"}},
	}

	// Act
	progress.RecordSession(first, []string{"t1", "t2"})
	progress.RecordSession(second, []string{"t3"})

	// Assert
	assert.Equal(t, 1100, progress.TotalPoints)
	assert.Equal(t, []string{"t1", "t2", "t3"}, progress.StagesCompleted)
	// Completion only ratchets upward
	assert.Equal(t, 60.0, progress.CompletionPercentage)
	// Repeat awards across sessions are kept
	assert.Len(t, progress.Achievements, 3)
}

func TestUserProgress_NewRecordIsEmpty(t *testing.T) {
	progress := NewUserProgress("user-1", "game-1", "puzzle", time.Now())

	assert.Zero(t, progress.TotalPoints)
	assert.Empty(t, progress.StagesCompleted)
	assert.Empty(t, progress.Achievements)
	assert.Equal(t, "puzzle", progress.GameType)
}
