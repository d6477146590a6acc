package entities

import (
	"testing"
	"time"

	"paperplay-backend/domain/games"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func strSlicePtr(s []string) *[]string {
	return &s
}

func newTestSession(t *testing.T, content map[string]any) *GameSession {
	t.Helper()
	session, err := NewGameSession("game-123", games.TypeQuiz, content, time.Now())
	require.NoError(t, err)
	return session
}

func TestGameSession_StartsActiveWithZeroedCounters(t *testing.T) {
	// Act
	session := newTestSession(t, nil)

	// Assert
	assert.Equal(t, SessionActive, session.Status())
	assert.Equal(t, "game-123", session.GameID())
	assert.Equal(t, games.TypeQuiz, session.Type())

	state := session.State()
	assert.Equal(t, 0, state.CurrentStage)
	assert.Equal(t, 0, state.Points)
	assert.Empty(t, state.CompletedTasks)
	assert.Empty(t, state.Discoveries)
	assert.Nil(t, state.EndTime)
}

func TestGameSession_RejectsUnknownGameType(t *testing.T) {
	_, err := NewGameSession("game-123", games.GameType("arcade"), nil, time.Now())

	assert.Error(t, err)
}

func TestGameSession_ApplyUpdate_ShallowMerge(t *testing.T) {
	// Arrange
	session := newTestSession(t, nil)
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		Points:      intPtr(50),
		Discoveries: strSlicePtr([]string{"d1"}),
	}))

	// Act: update points only; discoveries must survive untouched
	err := session.ApplyUpdate(StateUpdate{Points: intPtr(120)})

	// Assert
	require.NoError(t, err)
	state := session.State()
	assert.Equal(t, 120, state.Points)
	assert.Equal(t, []string{"d1"}, state.Discoveries)
}

func TestGameSession_ApplyUpdate_OverwritesListsWholesale(t *testing.T) {
	session := newTestSession(t, nil)
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		CompletedTasks: strSlicePtr([]string{"t1", "t2"}),
	}))

	err := session.ApplyUpdate(StateUpdate{
		CompletedTasks: strSlicePtr([]string{"t3"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, session.State().CompletedTasks)
}

func TestGameSession_ApplyUpdate_MergesExtraKeys(t *testing.T) {
	session := newTestSession(t, nil)

	require.NoError(t, session.ApplyUpdate(StateUpdate{Extra: map[string]any{"combo": 3}}))
	require.NoError(t, session.ApplyUpdate(StateUpdate{Extra: map[string]any{"level": "hard"}}))

	state := session.State()
	assert.Equal(t, 3, state.Extra["combo"])
	assert.Equal(t, "hard", state.Extra["level"])
}

func TestGameSession_StateReadsAreIdempotent(t *testing.T) {
	session := newTestSession(t, nil)
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		Points:      intPtr(10),
		Discoveries: strSlicePtr([]string{"d1"}),
	}))

	first := session.State()
	first.Discoveries[0] = "mutated"
	second := session.State()

	assert.Equal(t, []string{"d1"}, second.Discoveries)
	assert.Equal(t, first.Points, second.Points)
}

func TestGameSession_TotalTasksFromContent(t *testing.T) {
	content := map[string]any{"tasks": []any{"a", "b", "c"}}
	session := newTestSession(t, content)

	assert.Equal(t, 3, session.TotalTasks())
	assert.Equal(t, 0, newTestSession(t, nil).TotalTasks())
	assert.Equal(t, 0, newTestSession(t, map[string]any{"tasks": "oops"}).TotalTasks())
}

func TestGameSession_End_ComputesFinalState(t *testing.T) {
	// Arrange
	start := time.Now()
	content := map[string]any{"tasks": []any{"t1", "t2", "t3", "t4"}}
	session, err := NewGameSession("game-123", games.TypePuzzle, content, start)
	require.NoError(t, err)
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		Points:         intPtr(850),
		CompletedTasks: strSlicePtr([]string{"t1", "t2"}),
		Discoveries:    strSlicePtr([]string{"d1", "d2"}),
	}))

	// Act
	final, err := session.End(start.Add(90 * time.Second))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "game-123", final.GameID)
	assert.Equal(t, games.TypePuzzle, final.Type)
	assert.Equal(t, 850, final.FinalScore)
	assert.Equal(t, 50.0, final.CompletionPercentage)
	assert.InDelta(t, 90.0, final.TimeSpentSeconds, 0.001)
	assert.Equal(t, []string{"d1", "d2"}, final.Discoveries)
	assert.Empty(t, final.Achievements)
	assert.Equal(t, SessionEnded, session.Status())
}

func TestGameSession_End_ZeroTasksMeansZeroCompletion(t *testing.T) {
	session := newTestSession(t, map[string]any{"tasks": []any{}})
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		CompletedTasks: strSlicePtr([]string{"t1"}),
	}))

	final, err := session.End(time.Now())

	require.NoError(t, err)
	assert.Equal(t, 0.0, final.CompletionPercentage)
}

func TestGameSession_End_Twice(t *testing.T) {
	session := newTestSession(t, nil)
	_, err := session.End(time.Now())
	require.NoError(t, err)

	_, err = session.End(time.Now())

	assert.Error(t, err)
}

func TestGameSession_ApplyUpdate_AfterEnd(t *testing.T) {
	session := newTestSession(t, nil)
	_, err := session.End(time.Now())
	require.NoError(t, err)

	err = session.ApplyUpdate(StateUpdate{Points: intPtr(1)})

	assert.Error(t, err)
}

func TestGameSession_End_CompletionCappedAtHundred(t *testing.T) {
	// Arrange: more completed tasks reported than the game declares
	session := newTestSession(t, map[string]any{"tasks": []any{"t1", "t2"}})
	require.NoError(t, session.ApplyUpdate(StateUpdate{
		CompletedTasks: strSlicePtr([]string{"t1", "t2", "bonus-1", "bonus-2"}),
	}))

	// Act
	final, err := session.End(time.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100.0, final.CompletionPercentage)
}
