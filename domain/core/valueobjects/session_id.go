package valueobjects

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// SessionID is a value object identifying one play session of a game.
// The identifier combines the game ID with a random UUID so that
// concurrent sessions of the same game can never collide.
type SessionID struct {
	value  string
	gameID string
}

// NewSessionID creates a new SessionID scoped to the given game.
func NewSessionID(gameID string) (SessionID, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return SessionID{}, errors.New("game ID cannot be empty")
	}
	return SessionID{
		value:  gameID + "_" + uuid.New().String(),
		gameID: gameID,
	}, nil
}

// ParseSessionID reconstructs a SessionID from its string form.
func ParseSessionID(s string) (SessionID, error) {
	if s == "" {
		return SessionID{}, errors.New("session ID cannot be empty")
	}
	idx := strings.LastIndex(s, "_")
	if idx <= 0 || idx == len(s)-1 {
		return SessionID{}, errors.New("session ID must have the form <gameID>_<uuid>")
	}
	if _, err := uuid.Parse(s[idx+1:]); err != nil {
		return SessionID{}, errors.New("session ID suffix must be a valid UUID")
	}
	return SessionID{value: s, gameID: s[:idx]}, nil
}

// String returns the string representation of the SessionID.
func (id SessionID) String() string {
	return id.value
}

// GameID returns the game this session belongs to.
func (id SessionID) GameID() string {
	return id.gameID
}

// Equals checks if two SessionIDs are equal.
func (id SessionID) Equals(other SessionID) bool {
	return id.value == other.value
}

// IsZero checks if the SessionID is the zero value.
func (id SessionID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id SessionID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *SessionID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("SessionID must be a string")
	}
	parsed, err := ParseSessionID(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
