package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"paperplay-backend/application/ports"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// HTTPSummarizer calls the summarization service over HTTP behind a
// circuit breaker. When the breaker is open calls fail fast and the
// pipeline falls back to truncation without waiting on timeouts.
type HTTPSummarizer struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewHTTPSummarizer creates a summarizer client
func NewHTTPSummarizer(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSummarizer {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "summarizer",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &HTTPSummarizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  logger,
	}
}

var _ ports.Summarizer = (*HTTPSummarizer)(nil)

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize condenses one chunk of text
func (s *HTTPSummarizer) Summarize(ctx context.Context, chunk string) (string, error) {
	result, err := s.breaker.Execute(func() (any, error) {
		return s.call(ctx, chunk)
	})
	if err != nil {
		return "", pkgerrors.NewExternalError("summarizer", err)
	}
	return result.(string), nil
}

func (s *HTTPSummarizer) call(ctx context.Context, chunk string) (string, error) {
	body, err := json.Marshal(summarizeRequest{Text: chunk})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/summarize", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var decoded summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return decoded.Summary, nil
}
