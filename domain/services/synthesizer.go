package services

import (
	"math/rand"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/games"
	pkgerrors "paperplay-backend/pkg/errors"
)

// GameSynthesizer fans one paper's concepts and relationship edges out
// into the three game specifications. Generation per type is
// independent: a failure in one type leaves the other two unaffected.
type GameSynthesizer struct {
	quiz       *QuizGenerator
	simulation *SimulationGenerator
	puzzle     *PuzzleGenerator
}

// NewGameSynthesizer creates a synthesizer with all three generators
func NewGameSynthesizer(cfg *config.DomainConfig) *GameSynthesizer {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &GameSynthesizer{
		quiz:       NewQuizGenerator(cfg),
		simulation: NewSimulationGenerator(cfg),
		puzzle:     NewPuzzleGenerator(cfg),
	}
}

// Generate produces the spec for one game type. Types outside the
// closed set are rejected with a validation error.
func (s *GameSynthesizer) Generate(
	gameType games.GameType,
	concepts []entities.Concept,
	edges []entities.RelationshipEdge,
	rng *rand.Rand,
) (games.Spec, error) {
	switch gameType {
	case games.TypeQuiz:
		return s.quiz.Generate(concepts, rng), nil
	case games.TypeSimulation:
		return s.simulation.Generate(concepts, edges, rng), nil
	case games.TypePuzzle:
		return s.puzzle.Generate(concepts, edges, rng), nil
	default:
		return nil, pkgerrors.NewValidationError("unknown game type: " + string(gameType))
	}
}

// GenerateAll produces all three specs from the same inputs.
func (s *GameSynthesizer) GenerateAll(
	concepts []entities.Concept,
	edges []entities.RelationshipEdge,
	rng *rand.Rand,
) games.Bundle {
	return games.Bundle{
		Quiz:       s.quiz.Generate(concepts, rng),
		Simulation: s.simulation.Generate(concepts, edges, rng),
		Puzzle:     s.puzzle.Generate(concepts, edges, rng),
	}
}
