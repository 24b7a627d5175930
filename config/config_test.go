package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 7, c.GetInt(ConfigBoardWidth))
	assert.Equal(t, 7, c.GetInt(ConfigBoardHeight))
	assert.Equal(t, "ab-lookahead", c.GetString(ConfigPlayer1))
	assert.Equal(t, "random", c.GetString(ConfigPlayer2))
	assert.Equal(t, 10.0, c.GetFloat64(ConfigTimeoutThresholdMs))
	assert.False(t, c.GetBool(ConfigDebug))
}

func TestLoadOverrides(t *testing.T) {
	c := DefaultConfig()
	err := c.Load([]string{"board-width=9", "player1=mm-proximity", "debug=true"})
	require.NoError(t, err)
	assert.Equal(t, 9, c.GetInt(ConfigBoardWidth))
	assert.Equal(t, "mm-proximity", c.GetString(ConfigPlayer1))
	assert.True(t, c.GetBool(ConfigDebug))
	// untouched keys keep their defaults
	assert.Equal(t, 7, c.GetInt(ConfigBoardHeight))
}

func TestLoadRejectsBadArgs(t *testing.T) {
	c := DefaultConfig()
	assert.Error(t, c.Load([]string{"board-width"}))
	assert.Error(t, c.Load([]string{"no-such-option=1"}))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ISOLATION_GAME_COUNT", "25")
	c := DefaultConfig()
	assert.Equal(t, 25, c.GetInt(ConfigGameCount))
}
