package valueobjects

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_NewScopedToGame(t *testing.T) {
	// Act
	id, err := NewSessionID("game-123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "game-123", id.GameID())
	assert.False(t, id.IsZero())

	// Suffix after the last underscore must be a UUID
	parsed, err := ParseSessionID(id.String())
	require.NoError(t, err)
	assert.Equal(t, "game-123", parsed.GameID())
	assert.True(t, id.Equals(parsed))
}

func TestSessionID_NewRejectsEmptyGameID(t *testing.T) {
	_, err := NewSessionID("  ")

	assert.Error(t, err)
}

func TestSessionID_ParseRoundTrip(t *testing.T) {
	// Game IDs may themselves contain underscores; only the last
	// segment is the UUID.
	raw := "my_game_id_" + uuid.New().String()

	id, err := ParseSessionID(raw)

	require.NoError(t, err)
	assert.Equal(t, "my_game_id", id.GameID())
	assert.Equal(t, raw, id.String())
}

func TestSessionID_ParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"_" + uuid.New().String(),
		"game_not-a-uuid",
		"game_",
	}

	for _, raw := range cases {
		_, err := ParseSessionID(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestSessionID_JSONRoundTrip(t *testing.T) {
	id, err := NewSessionID("game-123")
	require.NoError(t, err)

	data, err := id.MarshalJSON()
	require.NoError(t, err)

	var decoded SessionID
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.True(t, id.Equals(decoded))
}
