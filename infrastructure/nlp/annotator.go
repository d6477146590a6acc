// Package nlp provides HTTP clients for the external language
// collaborators: the annotator that tokenizes and tags papers, and the
// summarizer that condenses them chunk by chunk.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paperplay-backend/application/ports"
	pkgerrors "paperplay-backend/pkg/errors"

	"go.uber.org/zap"
)

// HTTPAnnotator calls the annotation service over HTTP
type HTTPAnnotator struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPAnnotator creates an annotator client
func NewHTTPAnnotator(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPAnnotator {
	return &HTTPAnnotator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ ports.Annotator = (*HTTPAnnotator)(nil)

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate sends the full document for tokenization and tagging
func (a *HTTPAnnotator) Annotate(ctx context.Context, text string) (*ports.AnnotationResult, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode annotate request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build annotate request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, pkgerrors.NewExternalError("annotator", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		a.logger.Error("Annotator returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return nil, pkgerrors.NewExternalError("annotator", fmt.Errorf("status %d", resp.StatusCode))
	}

	var result ports.AnnotationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, pkgerrors.NewExternalError("annotator", fmt.Errorf("decode response: %w", err))
	}
	return &result, nil
}
