package valueobjects

import (
	"encoding/json"
	"strings"
)

// KeywordSet is an immutable set of keywords attached to a concept.
// Insertion order is preserved so that "the first keyword of a
// sentence" stays well-defined; membership is still set-like and
// case-sensitive because the annotator already normalizes token text.
type KeywordSet struct {
	ordered []string
	index   map[string]struct{}
}

// NewKeywordSet builds a set from a slice, dropping empties and
// duplicates while keeping first-seen order.
func NewKeywordSet(words []string) KeywordSet {
	ordered := make([]string, 0, len(words))
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, seen := index[w]; seen {
			continue
		}
		index[w] = struct{}{}
		ordered = append(ordered, w)
	}
	return KeywordSet{ordered: ordered, index: index}
}

// Contains reports whether the set holds the given keyword.
func (ks KeywordSet) Contains(word string) bool {
	_, ok := ks.index[word]
	return ok
}

// Intersect returns the keywords present in both sets, in the
// receiver's order.
func (ks KeywordSet) Intersect(other KeywordSet) KeywordSet {
	shared := make([]string, 0)
	for _, w := range ks.ordered {
		if other.Contains(w) {
			shared = append(shared, w)
		}
	}
	return NewKeywordSet(shared)
}

// Len returns the number of keywords in the set.
func (ks KeywordSet) Len() int {
	return len(ks.ordered)
}

// IsEmpty reports whether the set has no keywords.
func (ks KeywordSet) IsEmpty() bool {
	return len(ks.ordered) == 0
}

// Values returns the keywords in insertion order.
func (ks KeywordSet) Values() []string {
	return append([]string(nil), ks.ordered...)
}

// First returns the first keyword in insertion order, or "" when empty.
func (ks KeywordSet) First() string {
	if len(ks.ordered) == 0 {
		return ""
	}
	return ks.ordered[0]
}

// Smallest returns the lexicographically smallest keyword, or "" when
// empty. Used as the deterministic tie-break for edge labels.
func (ks KeywordSet) Smallest() string {
	smallest := ""
	for _, w := range ks.ordered {
		if smallest == "" || w < smallest {
			smallest = w
		}
	}
	return smallest
}

// MarshalJSON implements json.Marshaler
func (ks KeywordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ks.Values())
}

// UnmarshalJSON implements json.Unmarshaler
func (ks *KeywordSet) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}
	*ks = NewKeywordSet(words)
	return nil
}
