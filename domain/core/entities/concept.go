package entities

import (
	"encoding/json"

	"paperplay-backend/domain/core/valueobjects"
	pkgerrors "paperplay-backend/pkg/errors"
)

// ConceptType classifies what kind of fact a sentence expresses
type ConceptType string

const (
	ConceptDefinition  ConceptType = "definition"
	ConceptMethodology ConceptType = "methodology"
	ConceptResult      ConceptType = "result"
)

// IsValid reports whether the concept type is one of the known kinds
func (t ConceptType) IsValid() bool {
	switch t {
	case ConceptDefinition, ConceptMethodology, ConceptResult:
		return true
	}
	return false
}

// Concept is a typed, keyword-tagged fact extracted from one sentence
// of a source paper. Concepts are immutable once created; the extraction
// pass owns creation and everything downstream only reads them.
type Concept struct {
	conceptType ConceptType
	content     string
	keywords    valueobjects.KeywordSet
}

// NewConcept creates a concept with validation.
// An empty keyword set is allowed: a sentence with no noun tokens still
// qualifies, it just cannot attach to any relationship edge.
func NewConcept(conceptType ConceptType, content string, keywords valueobjects.KeywordSet) (Concept, error) {
	if !conceptType.IsValid() {
		return Concept{}, pkgerrors.NewValidationError("unknown concept type: " + string(conceptType))
	}
	if content == "" {
		return Concept{}, pkgerrors.NewValidationError("concept content cannot be empty")
	}
	return Concept{
		conceptType: conceptType,
		content:     content,
		keywords:    keywords,
	}, nil
}

// Type returns the concept's classification
func (c Concept) Type() ConceptType {
	return c.conceptType
}

// Content returns the source sentence the concept was extracted from
func (c Concept) Content() string {
	return c.content
}

// Keywords returns the noun/proper-noun tokens of the source sentence
func (c Concept) Keywords() valueobjects.KeywordSet {
	return c.keywords
}

// SharesKeywordsWith reports whether two concepts have overlapping keywords
func (c Concept) SharesKeywordsWith(other Concept) bool {
	return !c.keywords.Intersect(other.keywords).IsEmpty()
}

// conceptJSON is the wire shape for a concept
type conceptJSON struct {
	Type     ConceptType `json:"type"`
	Content  string      `json:"content"`
	Keywords []string    `json:"keywords"`
}

// MarshalJSON implements json.Marshaler
func (c Concept) MarshalJSON() ([]byte, error) {
	return json.Marshal(conceptJSON{
		Type:     c.conceptType,
		Content:  c.content,
		Keywords: c.keywords.Values(),
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Concept) UnmarshalJSON(data []byte) error {
	var raw conceptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	concept, err := NewConcept(raw.Type, raw.Content, valueobjects.NewKeywordSet(raw.Keywords))
	if err != nil {
		return err
	}
	*c = concept
	return nil
}
