package services

import (
	"strings"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"
)

// ConceptExtractor classifies annotated sentences into typed concepts.
// This is a domain service: it consumes annotator output and applies the
// deterministic trigger-word rules, nothing statistical.
type ConceptExtractor interface {
	// Extract returns one concept per (sentence, matching pattern) pair.
	// A sentence matching several patterns yields several concepts.
	Extract(sentences []entities.AnnotatedSentence) []entities.Concept

	// ExtractKeyPhrases collects the display key-phrase list: multi-word
	// noun phrases plus named entities with labels of interest.
	ExtractKeyPhrases(sentences []entities.AnnotatedSentence, namedEntities []entities.NamedEntity) []string
}

// DefaultConceptExtractor implements ConceptExtractor with the fixed
// trigger-word sets from the domain configuration.
type DefaultConceptExtractor struct {
	cfg *config.DomainConfig
}

// NewDefaultConceptExtractor creates an extractor with the given rules
func NewDefaultConceptExtractor(cfg *config.DomainConfig) *DefaultConceptExtractor {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &DefaultConceptExtractor{cfg: cfg}
}

// Extract classifies each sentence against the three trigger-word sets.
// Matching is non-exclusive: one sentence can produce up to three
// concepts, one per matching type. Sentences matching nothing are
// skipped entirely.
func (e *DefaultConceptExtractor) Extract(sentences []entities.AnnotatedSentence) []entities.Concept {
	concepts := make([]entities.Concept, 0, len(sentences))

	for _, sent := range sentences {
		if strings.TrimSpace(sent.Text) == "" {
			continue
		}
		keywords := valueobjects.NewKeywordSet(sent.NounKeywords())

		if containsTrigger(sent.Tokens, e.cfg.DefinitionTriggers) {
			if c, err := entities.NewConcept(entities.ConceptDefinition, sent.Text, keywords); err == nil {
				concepts = append(concepts, c)
			}
		}
		if containsTrigger(sent.Tokens, e.cfg.MethodologyTriggers) {
			if c, err := entities.NewConcept(entities.ConceptMethodology, sent.Text, keywords); err == nil {
				concepts = append(concepts, c)
			}
		}
		if containsTrigger(sent.Tokens, e.cfg.ResultTriggers) {
			if c, err := entities.NewConcept(entities.ConceptResult, sent.Text, keywords); err == nil {
				concepts = append(concepts, c)
			}
		}
	}

	return concepts
}

// ExtractKeyPhrases collects noun phrases with enough words plus named
// entities whose label is in the configured set, deduplicated while
// preserving first-seen order.
func (e *DefaultConceptExtractor) ExtractKeyPhrases(sentences []entities.AnnotatedSentence, namedEntities []entities.NamedEntity) []string {
	seen := make(map[string]struct{})
	phrases := make([]string, 0)

	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return
		}
		if _, dup := seen[phrase]; dup {
			return
		}
		seen[phrase] = struct{}{}
		phrases = append(phrases, phrase)
	}

	for _, sent := range sentences {
		for _, phrase := range sent.NounPhrases {
			if len(strings.Fields(phrase)) >= e.cfg.MinKeyPhraseWords {
				add(phrase)
			}
		}
	}

	for _, ent := range namedEntities {
		for _, label := range e.cfg.EntityLabels {
			if ent.Label == label {
				add(ent.Text)
				break
			}
		}
	}

	return phrases
}

// containsTrigger checks for an exact, case-insensitive token match
// against a trigger set. Substring matches do not count.
func containsTrigger(tokens []entities.Token, triggers []string) bool {
	for _, tok := range tokens {
		lowered := strings.ToLower(tok.Text)
		for _, trigger := range triggers {
			if lowered == trigger {
				return true
			}
		}
	}
	return false
}
