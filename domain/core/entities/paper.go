package entities

import (
	"time"

	"paperplay-backend/domain/games"
)

// ProcessedPaper is the persisted result of running one document
// through the full pipeline: summary, key phrases, extracted concepts
// and the three generated games. Field names form the wire contract.
type ProcessedPaper struct {
	GameID     string       `json:"game_id"`
	Summary    string       `json:"summary"`
	KeyPhrases []string     `json:"key_phrases"`
	Concepts   []Concept    `json:"concepts"`
	Games      games.Bundle `json:"game_elements"`
	CreatedAt  time.Time    `json:"created_at"`
}
