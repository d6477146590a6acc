package events

import (
	"time"

	"paperplay-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Paper events

// PaperProcessed is raised when a paper finished the game pipeline
type PaperProcessed struct {
	BaseEvent
	GameID       string `json:"game_id"`
	ConceptCount int    `json:"concept_count"`
	EdgeCount    int    `json:"edge_count"`
}

// NewPaperProcessed creates a PaperProcessed event
func NewPaperProcessed(gameID string, conceptCount, edgeCount int, timestamp time.Time) PaperProcessed {
	return PaperProcessed{
		BaseEvent: BaseEvent{
			AggregateID: gameID,
			EventType:   "paper.processed",
			Timestamp:   timestamp,
			Version:     1,
		},
		GameID:       gameID,
		ConceptCount: conceptCount,
		EdgeCount:    edgeCount,
	}
}

// Session events

// SessionStarted is raised when a play session is created
type SessionStarted struct {
	BaseEvent
	SessionID valueobjects.SessionID `json:"session_id"`
	GameID    string                 `json:"game_id"`
	GameType  string                 `json:"game_type"`
}

// NewSessionStarted creates a SessionStarted event
func NewSessionStarted(sessionID valueobjects.SessionID, gameType string, timestamp time.Time) SessionStarted {
	return SessionStarted{
		BaseEvent: BaseEvent{
			AggregateID: sessionID.String(),
			EventType:   "session.started",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID: sessionID,
		GameID:    sessionID.GameID(),
		GameType:  gameType,
	}
}

// SessionEnded is raised when a play session finishes
type SessionEnded struct {
	BaseEvent
	SessionID            valueobjects.SessionID `json:"session_id"`
	GameID               string                 `json:"game_id"`
	FinalScore           int                    `json:"final_score"`
	CompletionPercentage float64                `json:"completion_percentage"`
	TimeSpentSeconds     float64                `json:"time_spent_seconds"`
}

// NewSessionEnded creates a SessionEnded event
func NewSessionEnded(sessionID valueobjects.SessionID, finalScore int, completion, timeSpent float64, timestamp time.Time) SessionEnded {
	return SessionEnded{
		BaseEvent: BaseEvent{
			AggregateID: sessionID.String(),
			EventType:   "session.ended",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID:            sessionID,
		GameID:               sessionID.GameID(),
		FinalScore:           finalScore,
		CompletionPercentage: completion,
		TimeSpentSeconds:     timeSpent,
	}
}

// Achievement events

// AchievementAwarded is raised when a user earns an achievement
type AchievementAwarded struct {
	BaseEvent
	UserID        string `json:"user_id"`
	GameID        string `json:"game_id"`
	AchievementID string `json:"achievement_id"`
}

// NewAchievementAwarded creates an AchievementAwarded event
func NewAchievementAwarded(userID, gameID, achievementID string, timestamp time.Time) AchievementAwarded {
	return AchievementAwarded{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "achievement.awarded",
			Timestamp:   timestamp,
			Version:     1,
		},
		UserID:        userID,
		GameID:        gameID,
		AchievementID: achievementID,
	}
}
