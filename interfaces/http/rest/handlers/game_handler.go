package handlers

import (
	"encoding/json"
	"net/http"

	"paperplay-backend/application/queries"
	querybus "paperplay-backend/application/queries/bus"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GameHandler handles game retrieval HTTP requests
type GameHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetGame handles GET /games/{gameID}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetGameQuery{GameID: gameID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
