package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"paperplay-backend/application/commands"
	"paperplay-backend/pkg/common"
	pkgerrors "paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"
	"paperplay-backend/pkg/utils"

	"go.uber.org/zap"
)

// PaperHandler handles paper processing HTTP requests
type PaperHandler struct {
	processPaper *commands.ProcessPaperHandler
	errorHandler *pkgerrors.ErrorHandler
	metrics      *observability.Collector
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewPaperHandler creates a new paper handler
func NewPaperHandler(
	processPaper *commands.ProcessPaperHandler,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	maxBodyBytes int64,
	logger *zap.Logger,
) *PaperHandler {
	return &PaperHandler{
		processPaper: processPaper,
		errorHandler: errorHandler,
		metrics:      metrics,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// ProcessPaperRequest represents the request body for processing a paper
type ProcessPaperRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ProcessPaper handles POST /papers. The document arrives either as a
// JSON body or as a multipart upload under the "file" field.
func (h *PaperHandler) ProcessPaper(w http.ResponseWriter, r *http.Request) {
	text, err := h.readPaperText(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	paper, err := h.processPaper.Handle(r.Context(), commands.ProcessPaperCommand{Text: text})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.metrics.PapersProcessed.Inc()
	h.metrics.ConceptsExtracted.Observe(float64(len(paper.Concepts)))

	h.respondJSON(w, http.StatusCreated, paper)
}

func (h *PaperHandler) readPaperText(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxBodyBytes); err != nil {
			return "", err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", err
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, h.maxBodyBytes))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var req ProcessPaperRequest
	if err := common.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		return "", err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}
	return req.Text, nil
}

func (h *PaperHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *PaperHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
