package services

import (
	"time"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
)

// AchievementRuleEngine maps a completed session's final state to the
// achievements it earned. Rules are pure, evaluated in a fixed order,
// and non-exclusive; awarding carries no idempotence guarantee across
// sessions.
type AchievementRuleEngine interface {
	Evaluate(final *entities.FinalState, awardedAt time.Time) []entities.Achievement
}

// DefaultAchievementRuleEngine applies the built-in rule set.
type DefaultAchievementRuleEngine struct {
	cfg *config.DomainConfig
}

// NewDefaultAchievementRuleEngine creates a rule engine
func NewDefaultAchievementRuleEngine(cfg *config.DomainConfig) *DefaultAchievementRuleEngine {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &DefaultAchievementRuleEngine{cfg: cfg}
}

// Evaluate runs the rules against the final snapshot. Each awarded
// achievement is stamped with the given time; persistence is the
// caller's concern.
func (e *DefaultAchievementRuleEngine) Evaluate(final *entities.FinalState, awardedAt time.Time) []entities.Achievement {
	awarded := make([]entities.Achievement, 0, 3)

	if final.TimeSpentSeconds < e.cfg.SpeedDemonMaxSeconds {
		awarded = append(awarded, entities.Achievement{
			ID:          "speed_demon",
			Name:        "Speed Demon",
			Description: "Completed the game in under 5 minutes!",
			Timestamp:   awardedAt,
		})
	}

	if final.FinalScore >= e.cfg.PointMasterThreshold {
		awarded = append(awarded, entities.Achievement{
			ID:          "point_master",
			Name:        "Point Master",
			Description: "Scored over 1000 points!",
			Timestamp:   awardedAt,
		})
	}

	if len(final.Discoveries) >= e.cfg.ExplorerMinDiscoveries {
		awarded = append(awarded, entities.Achievement{
			ID:          "explorer",
			Name:        "Explorer",
			Description: "Made 5 or more discoveries!",
			Timestamp:   awardedAt,
		})
	}

	return awarded
}
