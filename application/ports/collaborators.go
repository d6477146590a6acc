package ports

import (
	"context"

	"paperplay-backend/domain/core/entities"
)

// AnnotationResult is the full output of the NLP collaborator for one
// document: sentence-level annotations plus document-level entities.
type AnnotationResult struct {
	Sentences []entities.AnnotatedSentence `json:"sentences"`
	Entities  []entities.NamedEntity       `json:"entities"`
}

// Annotator is the external NLP collaborator. The core never does
// tokenization or tagging itself; it consumes this output.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*AnnotationResult, error)
}

// Summarizer is the external summarization collaborator. Callers chunk
// the document; each call summarizes one chunk. Failures are recovered
// by the caller with a truncation fallback and never surfaced.
type Summarizer interface {
	Summarize(ctx context.Context, chunk string) (string, error)
}
