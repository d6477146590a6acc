package handlers

import (
	"context"

	"paperplay-backend/application/ports"
	"paperplay-backend/application/queries"
	"paperplay-backend/domain/core/valueobjects"
	pkgerrors "paperplay-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetSessionHandler handles session state queries
type GetSessionHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewGetSessionHandler creates a new session query handler
func NewGetSessionHandler(sessions ports.SessionRepository, logger *zap.Logger) *GetSessionHandler {
	return &GetSessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle executes the session query. Reading never mutates the state:
// two reads without an intervening update return identical snapshots.
func (h *GetSessionHandler) Handle(ctx context.Context, query queries.GetSessionQuery) (*queries.GetSessionResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := valueobjects.ParseSessionID(query.SessionID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	session, err := h.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &queries.GetSessionResult{
		SessionID: session.ID().String(),
		GameID:    session.GameID(),
		GameType:  string(session.Type()),
		Status:    string(session.Status()),
		State:     session.State(),
	}, nil
}
