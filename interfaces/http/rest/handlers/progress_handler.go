package handlers

import (
	"encoding/json"
	"net/http"

	"paperplay-backend/application/queries"
	querybus "paperplay-backend/application/queries/bus"
	"paperplay-backend/pkg/auth"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressHandler handles user progress HTTP requests
type ProgressHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetUserProgress handles GET /users/{userID}/progress.
// Users can only read their own progress.
func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if userCtx.UserID != userID {
		h.respondError(w, http.StatusForbidden, "Cannot access another user's progress")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetUserProgressQuery{
		UserID: userID,
		GameID: r.URL.Query().Get("game_id"),
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (h *ProgressHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
