package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendDataBuckets(t *testing.T) {
	g := newTestGenerator(t, 17)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		td, err := g.TrendData("prod_advil", "")
		require.NoError(t, err)
		seen[td.TrendDirection] = true

		switch td.TrendDirection {
		case TrendIncreasing:
			assert.GreaterOrEqual(t, td.WeekOverWeekChange, 5.0)
			assert.LessOrEqual(t, td.WeekOverWeekChange, 25.0)
			assert.GreaterOrEqual(t, td.MonthOverMonthChange, 10.0)
			assert.LessOrEqual(t, td.MonthOverMonthChange, 40.0)
		case TrendDecreasing:
			assert.GreaterOrEqual(t, td.WeekOverWeekChange, -25.0)
			assert.LessOrEqual(t, td.WeekOverWeekChange, -5.0)
		case TrendStable:
			assert.GreaterOrEqual(t, td.WeekOverWeekChange, -5.0)
			assert.LessOrEqual(t, td.WeekOverWeekChange, 5.0)
		default:
			t.Fatalf("unexpected direction %q", td.TrendDirection)
		}

		// Strength is the rounded wow/30 ratio, before the wow itself
		// is rounded for display.
		assert.InDelta(t, math.Abs(td.WeekOverWeekChange)/30, td.TrendStrength, 0.01)

		if td.HasAnomaly {
			assert.Contains(t, []string{"spike", "drop", "unusual_pattern"}, td.AnomalyType)
			assert.Contains(t, []string{"low", "medium", "high"}, td.AnomalySeverity)
			assert.NotEmpty(t, td.AnomalyDescription)
		} else {
			assert.Empty(t, td.AnomalyType)
			assert.Empty(t, td.AnomalySeverity)
			assert.Empty(t, td.AnomalyDescription)
		}
	}

	assert.True(t, seen[TrendIncreasing])
	assert.True(t, seen[TrendDecreasing])
	assert.True(t, seen[TrendStable])
}

func TestTrendDataSeasonality(t *testing.T) {
	g := newTestGenerator(t, 17)

	t.Run("beverages peak in july", func(t *testing.T) {
		td, err := g.TrendData("prod_coke_20oz", "")
		require.NoError(t, err)

		assert.True(t, td.IsSeasonalPeak)
		assert.Equal(t, "annual", td.SeasonalPattern)
		assert.GreaterOrEqual(t, td.SeasonalityFactor, 1.15)
		assert.LessOrEqual(t, td.SeasonalityFactor, 1.35)
	})

	t.Run("snacks follow weekly pattern", func(t *testing.T) {
		td, err := g.TrendData("prod_snickers", "")
		require.NoError(t, err)

		// The test clock is a Monday, outside the Fri-Sun peak window.
		assert.False(t, td.IsSeasonalPeak)
		assert.Equal(t, "weekly", td.SeasonalPattern)
		assert.GreaterOrEqual(t, td.SeasonalityFactor, 1.05)
		assert.LessOrEqual(t, td.SeasonalityFactor, 1.20)
	})

	t.Run("other categories are flat", func(t *testing.T) {
		td, err := g.TrendData("prod_advil", "")
		require.NoError(t, err)

		assert.False(t, td.IsSeasonalPeak)
		assert.Empty(t, td.SeasonalPattern)
		assert.GreaterOrEqual(t, td.SeasonalityFactor, 0.95)
		assert.LessOrEqual(t, td.SeasonalityFactor, 1.05)
	})
}

func TestTrendDataLocationScoped(t *testing.T) {
	g := newTestGenerator(t, 17)

	td, err := g.TrendData("prod_coke_20oz", "loc_hotel_dena")
	require.NoError(t, err)
	assert.Equal(t, "loc_hotel_dena", td.LocationID)
	assert.Equal(t, "Hotel Dena", td.LocationName)

	td, err = g.TrendData("prod_coke_20oz", "")
	require.NoError(t, err)
	assert.Empty(t, td.LocationID)
	assert.Empty(t, td.LocationName)
}
