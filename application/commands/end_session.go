package commands

import (
	"context"
	"time"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
	"paperplay-backend/domain/events"
	"paperplay-backend/domain/services"
	pkgerrors "paperplay-backend/pkg/errors"

	"go.uber.org/zap"
)

// EndSessionCommand finishes a session and folds its results into the
// calling user's progress record.
type EndSessionCommand struct {
	SessionID string `json:"session_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
}

// Validate implements the command contract
func (c EndSessionCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	_, err := valueobjects.ParseSessionID(c.SessionID)
	return err
}

// EndSessionHandler claims the session out of the active set, computes
// the final summary, runs the achievement rules and persists progress.
// Invoked directly because the caller needs the final state back.
type EndSessionHandler struct {
	sessions ports.SessionRepository
	progress ports.ProgressRepository
	rules    services.AchievementRuleEngine
	eventBus ports.EventPublisher
	logger   *zap.Logger
}

// NewEndSessionHandler creates a new handler instance
func NewEndSessionHandler(
	sessions ports.SessionRepository,
	progress ports.ProgressRepository,
	rules services.AchievementRuleEngine,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *EndSessionHandler {
	return &EndSessionHandler{
		sessions: sessions,
		progress: progress,
		rules:    rules,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle ends the session. Claiming removes it from the active set
// atomically, so a concurrent second end observes not-found.
func (h *EndSessionHandler) Handle(ctx context.Context, cmd EndSessionCommand) (*entities.FinalState, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := valueobjects.ParseSessionID(cmd.SessionID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	session, err := h.sessions.Claim(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	final, err := session.End(now)
	if err != nil {
		return nil, err
	}

	final.Achievements = h.rules.Evaluate(final, now)

	completedTasks := session.State().CompletedTasks
	err = h.progress.Apply(ctx, cmd.UserID, session.GameID(),
		func() *entities.UserProgress {
			return entities.NewUserProgress(cmd.UserID, session.GameID(), string(session.Type()), session.State().StartTime)
		},
		func(p *entities.UserProgress) {
			p.RecordSession(final, completedTasks)
		},
	)
	if err != nil {
		return nil, err
	}

	h.publishEndEvents(ctx, cmd.UserID, session, final, now)

	h.logger.Info("Session ended",
		zap.String("sessionID", cmd.SessionID),
		zap.String("userID", cmd.UserID),
		zap.Int("finalScore", final.FinalScore),
		zap.Float64("completion", final.CompletionPercentage),
		zap.Int("achievements", len(final.Achievements)),
	)

	return final, nil
}

func (h *EndSessionHandler) publishEndEvents(ctx context.Context, userID string, session *entities.GameSession, final *entities.FinalState, now time.Time) {
	batch := []events.DomainEvent{
		events.NewSessionEnded(session.ID(), final.FinalScore, final.CompletionPercentage, final.TimeSpentSeconds, now),
	}
	for _, a := range final.Achievements {
		batch = append(batch, events.NewAchievementAwarded(userID, session.GameID(), a.ID, now))
	}

	if err := h.eventBus.PublishBatch(ctx, batch); err != nil {
		h.logger.Warn("Failed to publish session end events",
			zap.String("sessionID", session.ID().String()),
			zap.Error(err),
		)
	}
}
