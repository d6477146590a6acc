package config

import "errors"

// DomainConfig holds all configurable business rules and constants for
// the paper-to-game pipeline. Generators and rule engines take this
// explicitly so tests can tighten or relax rules without process-wide state.
type DomainConfig struct {
	// Extraction rules
	DefinitionTriggers  []string
	MethodologyTriggers []string
	ResultTriggers      []string
	MinKeyPhraseWords   int
	EntityLabels        []string

	// Summarization rules
	SummaryChunkSize  int
	FallbackTextLimit int

	// Quiz rules
	QuizTimeLimitSeconds      int
	QuizPointsPerQuestion     int
	QuizPassingScore          int
	MultipleChoicePoints      int
	TrueFalsePoints           int
	MaxDistractorsPerQuestion int

	// Simulation rules
	SimulationAttractionStrength float64
	SimulationGravity            float64
	SimulationFriction           float64
	SimulationRepulsionStrength  float64
	SimulationParticleSpeed      float64
	ElementBaseSize              int

	// Puzzle rules
	PuzzleGridWidth      int
	PuzzleGridHeight     int
	PuzzleNodeSpacing    int
	PuzzleSnapOffset     float64
	PuzzleStrengthFactor float64
	NodeWidthPerChar     int
	NodeBaseWidth        int
	NodeHeight           int

	// Achievement rules
	SpeedDemonMaxSeconds   float64
	PointMasterThreshold   int
	ExplorerMinDiscoveries int
}

// DefaultDomainConfig returns the default business rules
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Extraction rules
		DefinitionTriggers:  []string{"is", "are", "refers", "defines"},
		MethodologyTriggers: []string{"method", "approach", "technique", "algorithm"},
		ResultTriggers:      []string{"result", "conclusion", "finding", "shows"},
		MinKeyPhraseWords:   2,
		EntityLabels:        []string{"ORG", "PRODUCT", "WORK_OF_ART", "LAW", "LANGUAGE"},

		// Summarization rules
		SummaryChunkSize:  1024,
		FallbackTextLimit: 1000,

		// Quiz rules
		QuizTimeLimitSeconds:      300,
		QuizPointsPerQuestion:     10,
		QuizPassingScore:          70,
		MultipleChoicePoints:      10,
		TrueFalsePoints:           5,
		MaxDistractorsPerQuestion: 3,

		// Simulation rules
		SimulationAttractionStrength: 0.5,
		SimulationGravity:            0.1,
		SimulationFriction:           0.02,
		SimulationRepulsionStrength:  0.3,
		SimulationParticleSpeed:      2,
		ElementBaseSize:              5,

		// Puzzle rules
		PuzzleGridWidth:      800,
		PuzzleGridHeight:     600,
		PuzzleNodeSpacing:    100,
		PuzzleSnapOffset:     30,
		PuzzleStrengthFactor: 1.5,
		NodeWidthPerChar:     5,
		NodeBaseWidth:        50,
		NodeHeight:           60,

		// Achievement rules
		SpeedDemonMaxSeconds:   300,
		PointMasterThreshold:   1000,
		ExplorerMinDiscoveries: 5,
	}
}

// Validate checks if the configuration is internally consistent
func (c *DomainConfig) Validate() error {
	if c.SummaryChunkSize <= 0 {
		return errors.New("summary chunk size must be positive")
	}
	if c.MaxDistractorsPerQuestion < 0 {
		return errors.New("distractor count cannot be negative")
	}
	if c.PuzzleGridWidth <= 0 || c.PuzzleGridHeight <= 0 {
		return errors.New("puzzle grid dimensions must be positive")
	}
	return nil
}
