package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameType(t *testing.T) {
	for _, valid := range []string{"quiz", "simulation", "puzzle"} {
		parsed, err := ParseGameType(valid)
		require.NoError(t, err)
		assert.Equal(t, GameType(valid), parsed)
	}

	_, err := ParseGameType("arcade")
	assert.Error(t, err)
	_, err = ParseGameType("")
	assert.Error(t, err)
}

func TestBundle_ByType(t *testing.T) {
	bundle := Bundle{
		Quiz:   &QuizSpec{Type: TypeQuiz},
		Puzzle: &PuzzleSpec{Type: TypePuzzle},
	}

	assert.Equal(t, bundle.Quiz, bundle.ByType(TypeQuiz))
	assert.Equal(t, bundle.Puzzle, bundle.ByType(TypePuzzle))
	assert.Nil(t, bundle.ByType(TypeSimulation))
	assert.Nil(t, bundle.ByType(GameType("arcade")))
}

func TestPayload_UsesWireFieldNames(t *testing.T) {
	spec := &QuizSpec{
		Type:      TypeQuiz,
		Title:     "Research Paper Quiz Challenge",
		Questions: []Question{{Type: QuestionTrueFalse, CorrectAnswer: true, Points: 5}},
		Settings:  QuizSettings{TimeLimit: 300},
	}

	payload, err := Payload(spec)

	require.NoError(t, err)
	assert.Equal(t, "quiz", payload["type"])
	assert.Equal(t, "Research Paper Quiz Challenge", payload["title"])

	questions, ok := payload["questions"].([]any)
	require.True(t, ok)
	require.Len(t, questions, 1)
	question, ok := questions[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "true_false", question["type"])
	assert.Equal(t, true, question["correct_answer"])
}
