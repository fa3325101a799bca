package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MAZE_SEED", "REVEAL_SECONDS", "TICK_INTERVAL_MS", "MIN_DISTANCE", "PLACEMENT_ATTEMPTS", "HEARTS", "OUTCOME_BUFFER"} {
		t.Setenv(key, "")
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		RevealSeconds:     5,
		TickInterval:      time.Second,
		MinDistance:       3,
		PlacementAttempts: 1000,
		Hearts:            3,
		OutcomeBuffer:     64,
	}, c)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAZE_SEED", "42")
	t.Setenv("REVEAL_SECONDS", "0")
	t.Setenv("TICK_INTERVAL_MS", "250")
	t.Setenv("HEARTS", "5")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 0, c.RevealSeconds)
	assert.Equal(t, 250*time.Millisecond, c.TickInterval)
	assert.Equal(t, 5, c.Hearts)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HEARTS", "three")
	_, err := Load()
	assert.ErrorContains(t, err, "HEARTS")

	t.Setenv("HEARTS", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "must not be negative")
}
