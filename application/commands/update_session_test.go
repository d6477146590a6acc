package commands

import (
	"context"
	"testing"
	"time"

	"paperplay-backend/application/commands/bus"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/games"
	"paperplay-backend/infrastructure/persistence/memory"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeSession(t *testing.T, repo *memory.SessionRepository) *entities.GameSession {
	t.Helper()
	session, err := entities.NewGameSession("game-123", games.TypeSimulation, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), session))
	return session
}

func TestUpdateSessionHandler_MergesState(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	session := activeSession(t, repo)
	handler := NewUpdateSessionHandler(repo, zap.NewNop())
	points := 500
	stage := 2

	// Act
	err := handler.Handle(ctx, UpdateSessionCommand{
		SessionID: session.ID().String(),
		Updates:   entities.StateUpdate{Points: &points, CurrentStage: &stage},
	})

	// Assert
	require.NoError(t, err)
	got, err := repo.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, 500, got.State().Points)
	assert.Equal(t, 2, got.State().CurrentStage)
}

func TestUpdateSessionHandler_MissingSession(t *testing.T) {
	repo := memory.NewSessionRepository()
	handler := NewUpdateSessionHandler(repo, zap.NewNop())
	session, err := entities.NewGameSession("game-123", games.TypeQuiz, nil, time.Now())
	require.NoError(t, err)

	err = handler.Handle(context.Background(), UpdateSessionCommand{
		SessionID: session.ID().String(),
	})

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUpdateSessionHandler_RejectsForeignCommandType(t *testing.T) {
	handler := NewUpdateSessionHandler(memory.NewSessionRepository(), zap.NewNop())

	err := handler.Handle(context.Background(), EndSessionCommand{SessionID: "x", UserID: "u"})

	assert.Error(t, err)
}

func TestUpdateSessionCommand_DispatchThroughBus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	session := activeSession(t, repo)

	commandBus := bus.NewCommandBus()
	require.NoError(t, commandBus.Register(UpdateSessionCommand{}, NewUpdateSessionHandler(repo, zap.NewNop())))
	points := 42

	// Act
	err := commandBus.Send(ctx, UpdateSessionCommand{
		SessionID: session.ID().String(),
		Updates:   entities.StateUpdate{Points: &points},
	})

	// Assert
	require.NoError(t, err)
	got, err := repo.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, 42, got.State().Points)
}

func TestUpdateSessionCommand_BusValidatesSessionID(t *testing.T) {
	commandBus := bus.NewCommandBus()
	require.NoError(t, commandBus.Register(UpdateSessionCommand{}, NewUpdateSessionHandler(memory.NewSessionRepository(), zap.NewNop())))

	err := commandBus.Send(context.Background(), UpdateSessionCommand{SessionID: "garbage"})

	assert.Error(t, err)
}
