// Package games defines the serializable game specifications derived
// from a processed paper. The three spec kinds form a closed set; code
// that needs per-kind behavior switches on the concrete type instead of
// dispatching on type-name strings.
package games

import (
	"encoding/json"

	pkgerrors "paperplay-backend/pkg/errors"
)

// GameType identifies one of the supported game kinds
type GameType string

const (
	TypeQuiz       GameType = "quiz"
	TypeSimulation GameType = "simulation"
	TypePuzzle     GameType = "puzzle"
)

// IsValid reports whether the game type is one of the supported kinds
func (t GameType) IsValid() bool {
	switch t {
	case TypeQuiz, TypeSimulation, TypePuzzle:
		return true
	}
	return false
}

// ParseGameType validates a raw type string
func ParseGameType(s string) (GameType, error) {
	t := GameType(s)
	if !t.IsValid() {
		return "", pkgerrors.NewValidationError("unknown game type: " + s)
	}
	return t, nil
}

// Spec is the closed union over the three game specifications.
// Only QuizSpec, SimulationSpec and PuzzleSpec implement it.
type Spec interface {
	Kind() GameType
	isSpec()
}

// Bundle holds the three specs generated from one paper, keyed by kind.
type Bundle struct {
	Quiz       *QuizSpec       `json:"quiz"`
	Simulation *SimulationSpec `json:"simulation"`
	Puzzle     *PuzzleSpec     `json:"puzzle"`
}

// ByType returns the spec for a given kind, or nil when absent.
func (b Bundle) ByType(t GameType) Spec {
	switch t {
	case TypeQuiz:
		if b.Quiz != nil {
			return b.Quiz
		}
	case TypeSimulation:
		if b.Simulation != nil {
			return b.Simulation
		}
	case TypePuzzle:
		if b.Puzzle != nil {
			return b.Puzzle
		}
	}
	return nil
}

// Payload converts a spec into the generic map form that sessions store
// as their content. The round trip through JSON keeps the wire field
// names authoritative.
func Payload(spec Spec) (map[string]any, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
