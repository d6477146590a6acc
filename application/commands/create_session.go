package commands

import (
	"context"
	"time"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/events"
	"paperplay-backend/domain/games"
	pkgerrors "paperplay-backend/pkg/errors"

	"go.uber.org/zap"
)

// CreateSessionCommand starts a new play session for a stored game.
// Content is normally resolved from the stored game bundle; supplying
// it explicitly overrides that lookup.
type CreateSessionCommand struct {
	GameID   string         `json:"game_id" validate:"required"`
	GameType string         `json:"game_type" validate:"required,oneof=quiz simulation puzzle"`
	Content  map[string]any `json:"content,omitempty"`
}

// Validate implements the command contract
func (c CreateSessionCommand) Validate() error {
	if c.GameID == "" {
		return pkgerrors.NewValidationError("game ID is required")
	}
	_, err := games.ParseGameType(c.GameType)
	return err
}

// CreateSessionHandler allocates sessions in the active set.
// Invoked directly because the caller needs the generated session ID.
type CreateSessionHandler struct {
	sessions ports.SessionRepository
	games    ports.GameRepository
	eventBus ports.EventPublisher
	logger   *zap.Logger
}

// NewCreateSessionHandler creates a new handler instance
func NewCreateSessionHandler(
	sessions ports.SessionRepository,
	games ports.GameRepository,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *CreateSessionHandler {
	return &CreateSessionHandler{
		sessions: sessions,
		games:    games,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle creates the session with zeroed counters and start time now.
func (h *CreateSessionHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (*entities.GameSession, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	gameType, err := games.ParseGameType(cmd.GameType)
	if err != nil {
		return nil, err
	}

	content := cmd.Content
	if content == nil {
		content, err = h.resolveContent(ctx, cmd.GameID, gameType)
		if err != nil {
			return nil, err
		}
	}

	session, err := entities.NewGameSession(cmd.GameID, gameType, content, time.Now())
	if err != nil {
		return nil, err
	}

	if err := h.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := h.eventBus.Publish(ctx, events.NewSessionStarted(session.ID(), cmd.GameType, time.Now())); err != nil {
		// Event delivery is best-effort; the session is already live.
		h.logger.Warn("Failed to publish session started event",
			zap.String("sessionID", session.ID().String()),
			zap.Error(err),
		)
	}

	h.logger.Info("Session created",
		zap.String("sessionID", session.ID().String()),
		zap.String("gameID", cmd.GameID),
		zap.String("gameType", cmd.GameType),
	)

	return session, nil
}

func (h *CreateSessionHandler) resolveContent(ctx context.Context, gameID string, gameType games.GameType) (map[string]any, error) {
	paper, err := h.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	spec := paper.Games.ByType(gameType)
	if spec == nil {
		return nil, pkgerrors.NewNotFoundError(string(gameType) + " game for " + gameID)
	}

	content, err := games.Payload(spec)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode game content: " + err.Error())
	}
	return content, nil
}
