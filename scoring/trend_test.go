package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTrendRegularChange(t *testing.T) {
	trend := deriveTrend(30, 20)
	assert.Equal(t, 10, trend.Change)
	assert.InDelta(t, 50, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionUp, trend.Direction)

	trend = deriveTrend(10, 20)
	assert.Equal(t, -10, trend.Change)
	assert.InDelta(t, -50, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionDown, trend.Direction)
}

func TestDeriveTrendZeroPrevious(t *testing.T) {
	// no previous score: percentage is pinned instead of dividing by zero
	trend := deriveTrend(15, 0)
	assert.InDelta(t, 100, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionUp, trend.Direction)

	trend = deriveTrend(0, 0)
	assert.InDelta(t, 0, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionNeutral, trend.Direction)

	trend = deriveTrend(-5, 0)
	assert.InDelta(t, 0, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionDown, trend.Direction)
}

func TestDeriveTrendNegativePrevious(t *testing.T) {
	// the divisor is the magnitude of the previous score
	trend := deriveTrend(10, -10)
	assert.Equal(t, 20, trend.Change)
	assert.InDelta(t, 200, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionUp, trend.Direction)
}

func TestDeriveTrendNeutral(t *testing.T) {
	trend := deriveTrend(20, 20)
	assert.Equal(t, 0, trend.Change)
	assert.InDelta(t, 0, trend.ChangePercent, 0.001)
	assert.Equal(t, DirectionNeutral, trend.Direction)
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(time.Date(2025, time.March, 15, 13, 37, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindowDecemberRollover(t *testing.T) {
	start, end := MonthWindow(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}
