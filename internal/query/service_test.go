package query

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

var testClock = time.Date(2025, time.July, 14, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, seed int64) *Service {
	t.Helper()
	gen := synth.New(
		catalog.New(),
		synth.WithRand(rand.New(rand.NewSource(seed))),
		synth.WithClock(func() time.Time { return testClock }),
	)
	return NewService(gen)
}

func TestLocationsFilter(t *testing.T) {
	s := newTestService(t, 1)

	all := s.Locations("")
	assert.Len(t, all, 11)

	hotels := s.Locations("hotel")
	require.NotEmpty(t, hotels)
	for _, loc := range hotels {
		assert.Equal(t, "hotel", loc.Type)
	}

	assert.Empty(t, s.Locations("stadium"))
}

func TestProductsCategoryCaseInsensitive(t *testing.T) {
	s := newTestService(t, 1)

	assert.Len(t, s.Products(""), 30)
	lower := s.Products("beverages")
	upper := s.Products("Beverages")
	assert.Equal(t, len(upper), len(lower))
	require.NotEmpty(t, lower)
	for _, p := range lower {
		assert.Equal(t, "Beverages", p.Category)
	}
}

func TestPickListDefaultsToToday(t *testing.T) {
	s := newTestService(t, 1)

	pl, err := s.PickList("loc_hotel_dena", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-14", pl.Date)

	pl, err = s.PickList("loc_hotel_dena", "2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", pl.Date)
}

func TestAllPickListsCoverEveryLocation(t *testing.T) {
	s := newTestService(t, 1)

	lists, err := s.AllPickLists("")
	require.NoError(t, err)
	require.Len(t, lists, 11)

	seen := map[string]bool{}
	for _, pl := range lists {
		seen[pl.LocationID] = true
	}
	assert.Len(t, seen, 11)
}

func TestModelAccuracyScopes(t *testing.T) {
	s := newTestService(t, 2)

	t.Run("both filters yield one record", func(t *testing.T) {
		results, err := s.ModelAccuracy("prod_coke_20oz", "loc_hotel_dena")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "prod_coke_20oz", results[0].ProductID)
		assert.Equal(t, "loc_hotel_dena", results[0].LocationID)
	})

	t.Run("product fans out over locations", func(t *testing.T) {
		results, err := s.ModelAccuracy("prod_coke_20oz", "")
		require.NoError(t, err)
		assert.Len(t, results, 11)
	})

	t.Run("location covers first ten products", func(t *testing.T) {
		results, err := s.ModelAccuracy("", "loc_hotel_dena")
		require.NoError(t, err)
		assert.Len(t, results, 10)
	})

	t.Run("no filters samples pairs", func(t *testing.T) {
		results, err := s.ModelAccuracy("", "")
		require.NoError(t, err)
		assert.Len(t, results, 15)
	})

	t.Run("unknown ids error", func(t *testing.T) {
		_, err := s.ModelAccuracy("prod_missing", "loc_hotel_dena")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestInventoryStatusFilter(t *testing.T) {
	s := newTestService(t, 3)

	results, err := s.InventoryStatus("loc_hotel_dena", "")
	require.NoError(t, err)
	assert.Len(t, results, 30)

	results, err = s.InventoryStatus("loc_hotel_dena", synth.StatusCritical)
	require.NoError(t, err)
	for _, inv := range results {
		assert.Equal(t, synth.StatusCritical, inv.Status)
	}

	_, err = s.InventoryStatus("loc_missing", "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	sampled, err := s.InventoryStatus("", "")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sampled), 20)
}

func TestDemandForecastDefaultsToTomorrow(t *testing.T) {
	s := newTestService(t, 4)

	results, err := s.DemandForecast("loc_hotel_dena", "prod_coke_20oz", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2025-07-15", results[0].ForecastDate)
	assert.Equal(t, "v2.1-lstm", results[0].ModelVersion)

	results, err = s.DemandForecast("loc_hotel_dena", "", "2025-09-01")
	require.NoError(t, err)
	assert.Len(t, results, 30)
	assert.Equal(t, "2025-09-01", results[0].ForecastDate)

	_, err = s.DemandForecast("loc_missing", "", "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProductPerformanceSortedByScore(t *testing.T) {
	s := newTestService(t, 5)

	results, err := s.ProductPerformance("loc_hotel_dena", "", "", "")
	require.NoError(t, err)
	require.Len(t, results, 30)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].PerformanceScore, results[i].PerformanceScore)
	}

	tiered, err := s.ProductPerformance("loc_hotel_dena", "", "", synth.TierAverage)
	require.NoError(t, err)
	for _, perf := range tiered {
		assert.Equal(t, synth.TierAverage, perf.PerformanceTier)
	}

	sampled, err := s.ProductPerformance("", "", "", "")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sampled), 15)
}

func TestTopPerformersLimit(t *testing.T) {
	s := newTestService(t, 6)

	results, err := s.TopPerformers("", 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)

	// Out-of-range limits fall back to the default.
	results, err = s.TopPerformers("", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopLimit)

	results, err = s.TopPerformers("", 99)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopLimit)

	_, err = s.TopPerformers("loc_missing", 5)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestTrendsFilters(t *testing.T) {
	s := newTestService(t, 7)

	results, err := s.Trends("loc_hotel_dena", "", "", nil)
	require.NoError(t, err)
	require.Len(t, results, 30)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].TrendStrength, results[i].TrendStrength)
	}

	increasing, err := s.Trends("loc_hotel_dena", "", synth.TrendIncreasing, nil)
	require.NoError(t, err)
	for _, td := range increasing {
		assert.Equal(t, synth.TrendIncreasing, td.TrendDirection)
	}

	yes := true
	anomalous, err := s.Trends("loc_hotel_dena", "", "", &yes)
	require.NoError(t, err)
	for _, td := range anomalous {
		assert.True(t, td.HasAnomaly)
	}

	sampled, err := s.Trends("", "", "", nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sampled), 20)
}

func TestAnomaliesSortedBySeverity(t *testing.T) {
	s := newTestService(t, 8)

	results, err := s.Anomalies("loc_hotel_dena", "")
	require.NoError(t, err)

	rank := map[string]int{"high": 0, "medium": 1, "low": 2}
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, rank[results[i-1].AnomalySeverity], rank[results[i].AnomalySeverity])
	}
	for _, td := range results {
		assert.True(t, td.HasAnomaly)
	}

	high, err := s.Anomalies("loc_hotel_dena", "high")
	require.NoError(t, err)
	for _, td := range high {
		assert.Equal(t, "high", td.AnomalySeverity)
	}
}

func TestAlertViews(t *testing.T) {
	s := newTestService(t, 9)

	critical, err := s.CriticalAlerts("")
	require.NoError(t, err)
	assert.Equal(t, 2, critical.TotalAlerts)
	for _, a := range critical.Alerts {
		assert.Equal(t, synth.SeverityCritical, a.Severity)
	}

	critical, err = s.CriticalAlerts("loc_hotel_dena")
	require.NoError(t, err)
	require.Equal(t, 1, critical.TotalAlerts)
	assert.Equal(t, "loc_hotel_dena", critical.Alerts[0].LocationID)

	stockouts, err := s.StockoutRisks("")
	require.NoError(t, err)
	assert.Equal(t, 3, stockouts.TotalAlerts)
	for _, a := range stockouts.Alerts {
		assert.Equal(t, synth.AlertStockoutRisk, a.AlertType)
	}

	_, err = s.Alerts("loc_missing", "", "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestEmptyResultsStayNonNil(t *testing.T) {
	s := newTestService(t, 10)

	// Filters that can never match must serialize as [], not null.
	results, err := s.InventoryStatus("loc_hotel_dena", "discontinued")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	trends, err := s.Trends("loc_hotel_dena", "", "sideways", nil)
	require.NoError(t, err)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)

	perf, err := s.ProductPerformance("loc_hotel_dena", "", "", "legendary")
	require.NoError(t, err)
	assert.NotNil(t, perf)
	assert.Empty(t, perf)

	alerts, err := s.Alerts("loc_hotel_dena", "overstock", synth.SeverityCritical)
	require.NoError(t, err)
	assert.NotNil(t, alerts.Alerts)
	assert.Empty(t, alerts.Alerts)
}
