package handlers

import (
	"context"

	"paperplay-backend/application/ports"
	"paperplay-backend/application/queries"
	"paperplay-backend/domain/core/entities"

	"go.uber.org/zap"
)

// GetGameHandler handles processed-paper retrieval queries
type GetGameHandler struct {
	games  ports.GameRepository
	logger *zap.Logger
}

// NewGetGameHandler creates a new game query handler
func NewGetGameHandler(games ports.GameRepository, logger *zap.Logger) *GetGameHandler {
	return &GetGameHandler{
		games:  games,
		logger: logger,
	}
}

// Handle executes the game query
func (h *GetGameHandler) Handle(ctx context.Context, query queries.GetGameQuery) (*entities.ProcessedPaper, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	paper, err := h.games.GetByID(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	return paper, nil
}
