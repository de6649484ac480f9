package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descendingHistory builds n records newest-first starting at 2025-06-30.
func descendingHistory(n int) []DailyRecord {
	history := make([]DailyRecord, n)
	for i := 0; i < n; i++ {
		rec := DefaultRecord(fmt.Sprintf("2025-06-%02d", 30-i))
		rec.WaterMl = (n - i) * 100
		rec.Steps = (n - i) * 1000
		history[i] = rec
	}
	return history
}

func TestRecentWindow(t *testing.T) {
	t.Run("more records than window", func(t *testing.T) {
		window := RecentWindow(descendingHistory(10), 7)
		require.Len(t, window, 7)
		// Oldest-first: first entry is the 7th most recent day.
		assert.Equal(t, "2025-06-24", window[0].Date)
		assert.Equal(t, "2025-06-30", window[6].Date)
		for i := 1; i < len(window); i++ {
			assert.Less(t, window[i-1].Date, window[i].Date, "window must be ascending by date")
		}
	})

	t.Run("fewer records than window", func(t *testing.T) {
		window := RecentWindow(descendingHistory(3), 7)
		require.Len(t, window, 3, "no padding with synthetic days")
		assert.Equal(t, "2025-06-28", window[0].Date)
		assert.Equal(t, "2025-06-30", window[2].Date)
	})

	t.Run("empty history", func(t *testing.T) {
		window := RecentWindow(nil, 7)
		assert.Empty(t, window)
		assert.NotNil(t, window)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		history := descendingHistory(5)
		_ = RecentWindow(history, 3)
		assert.Equal(t, "2025-06-30", history[0].Date)
	})
}

func TestSeries(t *testing.T) {
	window := RecentWindow(descendingHistory(5), 5)

	water := Series(window, MetricWater)
	steps := Series(window, MetricSteps)
	require.Len(t, water, 5)
	require.Len(t, steps, 5)

	// Parallel series: same dates, metric-specific values.
	for i := range water {
		assert.Equal(t, water[i].Date, steps[i].Date)
	}
	assert.Equal(t, 100.0, water[0].Value) // oldest day logged the least
	assert.Equal(t, 500.0, water[4].Value)
	assert.Equal(t, 5000.0, steps[4].Value)
}

func TestSeriesSkipsAbsentProtein(t *testing.T) {
	grams := 30.0
	window := []DailyRecord{
		{Date: "2025-06-28"},
		{Date: "2025-06-29", Protein: &grams},
		{Date: "2025-06-30"},
	}
	points := Series(window, MetricProtein)
	require.Len(t, points, 1, "days with no protein logged are absent, not zero")
	assert.Equal(t, "2025-06-29", points[0].Date)
	assert.Equal(t, 30.0, points[0].Value)
}
