package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelBoundaries(t *testing.T) {
	assert.Equal(t, "Beginner", LevelFor(0))
	assert.Equal(t, "Beginner", LevelFor(50))
	assert.Equal(t, "Intermediate", LevelFor(51))
	assert.Equal(t, "Intermediate", LevelFor(150))
	assert.Equal(t, "Pro", LevelFor(151))
	assert.Equal(t, "Pro", LevelFor(10000))
}

func TestLevelForNegativeTotal(t *testing.T) {
	// deductions can push a ledger below zero; that is still the first tier
	assert.Equal(t, "Beginner", LevelFor(-10))
}

func TestProgressWithinBand(t *testing.T) {
	// Beginner band is [0, 50], 51 steps wide
	assert.InDelta(t, 0, ProgressFor(0), 0.001)
	assert.InDelta(t, float64(25)/51*100, ProgressFor(25), 0.001)
	assert.InDelta(t, float64(50)/51*100, ProgressFor(50), 0.001)

	// Intermediate band is [51, 150], 100 steps wide
	assert.InDelta(t, 0, ProgressFor(51), 0.001)
	assert.InDelta(t, 99, ProgressFor(150), 0.001)
}

func TestProgressTerminalTier(t *testing.T) {
	assert.Equal(t, float64(100), ProgressFor(151))
	assert.Equal(t, float64(100), ProgressFor(99999))
}

func TestLevelInfo(t *testing.T) {
	level := LevelInfo(75)
	assert.Equal(t, "Intermediate", level.Name)
	assert.InDelta(t, 24, level.ProgressPercent, 0.001)
}
