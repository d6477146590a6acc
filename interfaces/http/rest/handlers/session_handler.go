package handlers

import (
	"encoding/json"
	"net/http"

	"paperplay-backend/application/commands"
	"paperplay-backend/application/commands/bus"
	"paperplay-backend/application/queries"
	querybus "paperplay-backend/application/queries/bus"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/pkg/auth"
	pkgerrors "paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"
	"paperplay-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionHandler handles game session HTTP requests
type SessionHandler struct {
	createSession *commands.CreateSessionHandler
	endSession    *commands.EndSessionHandler
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	errorHandler  *pkgerrors.ErrorHandler
	metrics       *observability.Collector
	logger        *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	createSession *commands.CreateSessionHandler,
	endSession *commands.EndSessionHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		createSession: createSession,
		endSession:    endSession,
		commandBus:    commandBus,
		queryBus:      queryBus,
		errorHandler:  errorHandler,
		metrics:       metrics,
		logger:        logger,
	}
}

// CreateSessionRequest represents the request body for starting a session
type CreateSessionRequest struct {
	GameID   string `json:"game_id" validate:"required"`
	GameType string `json:"game_type" validate:"required,oneof=quiz simulation puzzle"`
}

// CreateSessionResponse represents the response for starting a session
type CreateSessionResponse struct {
	SessionID string                `json:"session_id"`
	GameID    string                `json:"game_id"`
	GameType  string                `json:"game_type"`
	Content   map[string]any        `json:"content"`
	State     entities.SessionState `json:"state"`
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.createSession.Handle(r.Context(), commands.CreateSessionCommand{
		GameID:   req.GameID,
		GameType: req.GameType,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.metrics.SessionsStarted.Inc()

	h.respondJSON(w, http.StatusCreated, CreateSessionResponse{
		SessionID: session.ID().String(),
		GameID:    session.GameID(),
		GameType:  string(session.Type()),
		Content:   session.Content(),
		State:     session.State(),
	})
}

// GetSession handles GET /sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{SessionID: sessionID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// UpdateSession handles PATCH /sessions/{sessionID}
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var updates entities.StateUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.UpdateSessionCommand{
		SessionID: sessionID,
		Updates:   updates,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{SessionID: sessionID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// EndSession handles POST /sessions/{sessionID}/end
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	final, err := h.endSession.Handle(r.Context(), commands.EndSessionCommand{
		SessionID: sessionID,
		UserID:    userCtx.UserID,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.metrics.SessionsEnded.Inc()
	for _, a := range final.Achievements {
		h.metrics.AchievementsAwarded.WithLabelValues(a.ID).Inc()
	}

	h.respondJSON(w, http.StatusOK, final)
}

func (h *SessionHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
