package services

import (
	"fmt"
	"math/rand"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/games"
)

// QuizGenerator synthesizes a quiz spec from extracted concepts.
type QuizGenerator struct {
	cfg *config.DomainConfig
}

// NewQuizGenerator creates a quiz generator
func NewQuizGenerator(cfg *config.DomainConfig) *QuizGenerator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &QuizGenerator{cfg: cfg}
}

// Generate builds the quiz: one multiple-choice question per definition
// concept and one true/false question per methodology concept. The
// true/false questions are always answered true; that mirrors the rule
// as specified, even though it never produces a negative example.
func (g *QuizGenerator) Generate(concepts []entities.Concept, rng *rand.Rand) *games.QuizSpec {
	questions := make([]games.Question, 0, len(concepts))

	for i, concept := range concepts {
		switch concept.Type() {
		case entities.ConceptDefinition:
			questions = append(questions, g.multipleChoice(concepts, i, rng))
		case entities.ConceptMethodology:
			questions = append(questions, games.Question{
				Type:          games.QuestionTrueFalse,
				Question:      fmt.Sprintf("Is the following statement about the methodology correct? %s", concept.Content()),
				CorrectAnswer: true,
				Explanation:   concept.Content(),
				Points:        g.cfg.TrueFalsePoints,
			})
		}
	}

	rng.Shuffle(len(questions), func(a, b int) {
		questions[a], questions[b] = questions[b], questions[a]
	})

	return &games.QuizSpec{
		Type:        games.TypeQuiz,
		Title:       "Research Paper Quiz Challenge",
		Description: "Test your understanding of the research paper concepts",
		Questions:   questions,
		Settings: games.QuizSettings{
			TimeLimit:         g.cfg.QuizTimeLimitSeconds,
			PointsPerQuestion: g.cfg.QuizPointsPerQuestion,
			PassingScore:      g.cfg.QuizPassingScore,
		},
	}
}

// multipleChoice builds a question whose correct answer is the concept
// content and whose distractors are the first few other concept
// contents, then shuffles the options.
func (g *QuizGenerator) multipleChoice(concepts []entities.Concept, index int, rng *rand.Rand) games.Question {
	concept := concepts[index]

	subject := concept.Keywords().First()
	if subject == "" {
		subject = "this concept"
	}

	options := []string{concept.Content()}
	for i, other := range concepts {
		if i == index {
			continue
		}
		options = append(options, other.Content())
		if len(options) > g.cfg.MaxDistractorsPerQuestion {
			break
		}
	}

	rng.Shuffle(len(options), func(a, b int) {
		options[a], options[b] = options[b], options[a]
	})

	return games.Question{
		Type:          games.QuestionMultipleChoice,
		Question:      fmt.Sprintf("What is the correct definition of %s?", subject),
		Options:       options,
		CorrectAnswer: concept.Content(),
		Points:        g.cfg.MultipleChoicePoints,
	}
}
