package entities

import "time"

// UserProgress tracks one user's accumulated results for one game.
// Progress is only ever updated additively as sessions complete; this
// core never deletes it.
type UserProgress struct {
	UserID               string        `json:"user_id"`
	GameID               string        `json:"game_id"`
	GameType             string        `json:"type"`
	StartedAt            time.Time     `json:"started_at"`
	StagesCompleted      []string      `json:"stages_completed"`
	TotalPoints          int           `json:"total_points"`
	CompletionPercentage float64       `json:"completion_percentage"`
	Achievements         []Achievement `json:"achievements"`
}

// NewUserProgress initializes an empty progress record
func NewUserProgress(userID, gameID, gameType string, startedAt time.Time) *UserProgress {
	return &UserProgress{
		UserID:          userID,
		GameID:          gameID,
		GameType:        gameType,
		StartedAt:       startedAt,
		StagesCompleted: []string{},
		Achievements:    []Achievement{},
	}
}

// Clone returns a deep copy safe to hand to readers while the original
// keeps being updated.
func (p *UserProgress) Clone() *UserProgress {
	copied := *p
	copied.StagesCompleted = append([]string(nil), p.StagesCompleted...)
	copied.Achievements = append([]Achievement(nil), p.Achievements...)
	return &copied
}

// RecordSession folds a finished session into the progress record.
// Points accumulate, completed tasks extend the stage list, and the
// awarded achievements are appended in order. Duplicates across
// sessions are kept deliberately.
func (p *UserProgress) RecordSession(final *FinalState, completedTasks []string) {
	p.TotalPoints += final.FinalScore
	p.StagesCompleted = append(p.StagesCompleted, completedTasks...)
	if final.CompletionPercentage > p.CompletionPercentage {
		p.CompletionPercentage = final.CompletionPercentage
	}
	p.Achievements = append(p.Achievements, final.Achievements...)
}
