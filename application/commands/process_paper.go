package commands

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/events"
	"paperplay-backend/domain/services"
	pkgerrors "paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessPaperCommand runs one document through the full pipeline and
// stores the resulting game bundle.
type ProcessPaperCommand struct {
	Text string `json:"text" validate:"required"`
}

// Validate implements the command contract
func (c ProcessPaperCommand) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return pkgerrors.NewValidationError("paper text is required")
	}
	return nil
}

// ProcessPaperHandler orchestrates annotation, summarization, concept
// extraction, relationship discovery and game synthesis. Invoked
// directly because the caller needs the stored paper back.
type ProcessPaperHandler struct {
	annotator   ports.Annotator
	summarizer  ports.Summarizer
	extractor   services.ConceptExtractor
	builder     services.RelationshipGraphBuilder
	synthesizer *services.GameSynthesizer
	games       ports.GameRepository
	eventBus    ports.EventPublisher
	cfg         *config.DomainConfig
	tracer      *observability.Tracer
	metrics     *observability.Collector
	logger      *zap.Logger
	newRand     func() *rand.Rand
}

// NewProcessPaperHandler creates a new handler instance
func NewProcessPaperHandler(
	annotator ports.Annotator,
	summarizer ports.Summarizer,
	extractor services.ConceptExtractor,
	builder services.RelationshipGraphBuilder,
	synthesizer *services.GameSynthesizer,
	games ports.GameRepository,
	eventBus ports.EventPublisher,
	cfg *config.DomainConfig,
	tracer *observability.Tracer,
	metrics *observability.Collector,
	logger *zap.Logger,
) *ProcessPaperHandler {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &ProcessPaperHandler{
		annotator:   annotator,
		summarizer:  summarizer,
		extractor:   extractor,
		builder:     builder,
		synthesizer: synthesizer,
		games:       games,
		eventBus:    eventBus,
		cfg:         cfg,
		tracer:      tracer,
		metrics:     metrics,
		logger:      logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Handle runs the pipeline. Summarization failures degrade to a
// truncation fallback; annotation failures abort the request.
func (h *ProcessPaperHandler) Handle(ctx context.Context, cmd ProcessPaperCommand) (*entities.ProcessedPaper, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var annotation *ports.AnnotationResult
	err := h.tracer.TraceFunction(ctx, "annotate", func(ctx context.Context) error {
		var aerr error
		annotation, aerr = h.annotator.Annotate(ctx, cmd.Text)
		return aerr
	})
	if err != nil {
		return nil, pkgerrors.NewExternalError("annotator", err)
	}

	var summary string
	_ = h.tracer.TraceFunction(ctx, "summarize", func(ctx context.Context) error {
		summary = h.summarize(ctx, cmd.Text)
		return nil
	})

	concepts := h.extractor.Extract(annotation.Sentences)
	keyPhrases := h.extractor.ExtractKeyPhrases(annotation.Sentences, annotation.Entities)
	edges := h.builder.Build(concepts)

	bundle := h.synthesizer.GenerateAll(concepts, edges, h.newRand())

	paper := &entities.ProcessedPaper{
		GameID:     uuid.New().String(),
		Summary:    summary,
		KeyPhrases: keyPhrases,
		Concepts:   concepts,
		Games:      bundle,
		CreatedAt:  time.Now(),
	}

	if err := h.games.Save(ctx, paper); err != nil {
		return nil, err
	}
	h.tracer.Annotate(ctx, "game_id", paper.GameID)

	if err := h.eventBus.Publish(ctx, events.NewPaperProcessed(paper.GameID, len(concepts), len(edges), time.Now())); err != nil {
		h.logger.Warn("Failed to publish paper processed event",
			zap.String("gameID", paper.GameID),
			zap.Error(err),
		)
	}

	h.logger.Info("Paper processed",
		zap.String("gameID", paper.GameID),
		zap.Int("concepts", len(concepts)),
		zap.Int("edges", len(edges)),
		zap.Int("keyPhrases", len(keyPhrases)),
	)

	return paper, nil
}

// summarize runs the summarizer per fixed-size chunk and joins the
// results. Any chunk failure discards the whole summary in favor of a
// plain truncation of the source text.
func (h *ProcessPaperHandler) summarize(ctx context.Context, text string) string {
	chunks := chunkText(text, h.cfg.SummaryChunkSize)

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part, err := h.summarizer.Summarize(ctx, chunk)
		if err != nil {
			h.logger.Warn("Summarization failed, falling back to truncation",
				zap.Int("chunk", i),
				zap.Error(err),
			)
			if h.metrics != nil {
				h.metrics.SummaryFallbacks.Inc()
			}
			return truncate(text, h.cfg.FallbackTextLimit)
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

func chunkText(text string, size int) []string {
	runes := []rune(text)
	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
