package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
)

func TestPickListCuratedRows(t *testing.T) {
	g := newTestGenerator(t, 1)

	pl, err := g.PickList("loc_hotel_dena", "2025-07-14")
	require.NoError(t, err)

	assert.Equal(t, "loc_hotel_dena", pl.LocationID)
	assert.Equal(t, "Hotel Dena", pl.LocationName)
	assert.Equal(t, 4, pl.TotalItems)
	assert.Len(t, pl.Items, 4)
	assert.Equal(t, 4*2+15, pl.EstimatedTimeMinutes)
	assert.Equal(t, "pending", pl.Status)

	var pepsi *PickListItem
	for i := range pl.Items {
		if pl.Items[i].ProductID == "prod_pepsi_diet_20oz" {
			pepsi = &pl.Items[i]
		}
	}
	require.NotNil(t, pepsi, "curated Pepsi Diet row missing")

	assert.Equal(t, 12, pepsi.CurrentStock)
	assert.Equal(t, 28, pepsi.Demand)
	assert.Equal(t, 16, pepsi.RecommendedQuantity)
	assert.Equal(t, PriorityHigh, pepsi.Priority)
	assert.Equal(t, 0.87, pepsi.ConfidenceScore)
	assert.Equal(t, 95.0, pepsi.StockoutCost)
	assert.Equal(t, []string{"Business travelers prefer diet (+3%)"}, pepsi.AIFactors)
	assert.Equal(t, pepsi.AIFactors[0], pepsi.Reason)

	// p50 is the curated demand; p10/p90 derive from fixed ratios.
	assert.Equal(t, 28.0, pepsi.Forecast.P50)
	assert.Equal(t, 20.0, pepsi.Forecast.P10)
	assert.Equal(t, 34.0, pepsi.Forecast.P90)

	// Row was updated 180 minutes before now, restocked 24h before that.
	assert.Equal(t, testClock.Add(-180*time.Minute), pepsi.LastUpdated)
	assert.Equal(t, pepsi.LastUpdated.Add(-24*time.Hour), pepsi.LastRestocked)
}

func TestPickListAllAggregatesCuratedRows(t *testing.T) {
	g := newTestGenerator(t, 1)

	pl, err := g.PickList(AllLocations, "2025-07-14")
	require.NoError(t, err)

	assert.Equal(t, AllLocations, pl.LocationID)
	assert.Equal(t, "All Locations", pl.LocationName)
	assert.Equal(t, len(demoPickRows), pl.TotalItems)
}

func TestPickListUnknownLocation(t *testing.T) {
	g := newTestGenerator(t, 1)

	_, err := g.PickList("loc_nonexistent", "2025-07-14")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestPickListSyntheticFallback(t *testing.T) {
	g := newTestGenerator(t, 7)

	// Westin SF is a hotel with no curated rows.
	pl, err := g.PickList("loc_westin_sf", "2025-07-14")
	require.NoError(t, err)

	assert.Equal(t, "loc_westin_sf", pl.LocationID)
	assert.Len(t, pl.Items, 15, "hotels sample 15 products")
	assert.Equal(t, 15*2+15, pl.EstimatedTimeMinutes)

	lastRank := -1
	for _, item := range pl.Items {
		rank := priorityRank(item.Priority)
		assert.GreaterOrEqual(t, rank, lastRank, "items must be sorted by priority")
		lastRank = rank

		assert.GreaterOrEqual(t, item.Forecast.P10, 1.0)
		assert.GreaterOrEqual(t, item.ConfidenceScore, 0.75)
		assert.LessOrEqual(t, item.ConfidenceScore, 0.95)
		assert.NotEmpty(t, item.Reason)

		switch {
		case item.CurrentStock <= 2:
			assert.Equal(t, PriorityHigh, item.Priority)
		case item.CurrentStock <= 5:
			assert.Equal(t, PriorityMedium, item.Priority)
		default:
			assert.Equal(t, PriorityLow, item.Priority)
		}
	}
}

func TestPickListOfficeSamplesBeveragesAndSnacksOnly(t *testing.T) {
	g := newTestGenerator(t, 3)

	// Downtown Plaza is curated; Tech Campus Austin is an office without
	// curated rows.
	pl, err := g.PickList("loc_tech_campus_austin", "2025-07-14")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(pl.Items), 12)
	for _, item := range pl.Items {
		p, err := g.Catalog().Product(item.ProductID)
		require.NoError(t, err)
		assert.Contains(t, []string{"Beverages", "Snacks"}, p.Category)
	}
}
