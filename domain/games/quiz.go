package games

// QuestionType identifies the kind of a quiz question
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
)

// Question is one quiz item. CorrectAnswer is the full answer text for
// multiple-choice questions and a boolean for true/false questions.
type Question struct {
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer any          `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        int          `json:"points"`
}

// QuizSettings is fixed configuration advisory to the presentation
// layer; the time limit is not enforced server-side.
type QuizSettings struct {
	TimeLimit         int `json:"time_limit"`
	PointsPerQuestion int `json:"points_per_question"`
	PassingScore      int `json:"passing_score"`
}

// QuizSpec is the complete description of a quiz game.
type QuizSpec struct {
	Type        GameType     `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Questions   []Question   `json:"questions"`
	Settings    QuizSettings `json:"settings"`
}

// Kind implements Spec
func (s *QuizSpec) Kind() GameType { return TypeQuiz }

func (s *QuizSpec) isSpec() {}
