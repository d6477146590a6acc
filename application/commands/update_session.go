package commands

import (
	"context"

	"paperplay-backend/application/commands/bus"
	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
	pkgerrors "paperplay-backend/pkg/errors"

	"go.uber.org/zap"
)

// UpdateSessionCommand shallow-merges progress into an active session.
// Fields absent from Updates leave the stored value untouched.
type UpdateSessionCommand struct {
	SessionID string               `json:"session_id" validate:"required"`
	Updates   entities.StateUpdate `json:"updates"`
}

// Validate implements the Command interface
func (c UpdateSessionCommand) Validate() error {
	_, err := valueobjects.ParseSessionID(c.SessionID)
	return err
}

// UpdateSessionHandler applies state updates under the repository's
// per-session lock.
type UpdateSessionHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewUpdateSessionHandler creates a new handler instance
func NewUpdateSessionHandler(sessions ports.SessionRepository, logger *zap.Logger) *UpdateSessionHandler {
	return &UpdateSessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle implements bus.CommandHandler
func (h *UpdateSessionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	updateCmd, ok := cmd.(UpdateSessionCommand)
	if !ok {
		return pkgerrors.NewInternalError("invalid command type for UpdateSessionHandler")
	}

	id, err := valueobjects.ParseSessionID(updateCmd.SessionID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	err = h.sessions.Mutate(ctx, id, func(session *entities.GameSession) error {
		return session.ApplyUpdate(updateCmd.Updates)
	})
	if err != nil {
		return err
	}

	h.logger.Debug("Session updated", zap.String("sessionID", updateCmd.SessionID))
	return nil
}
