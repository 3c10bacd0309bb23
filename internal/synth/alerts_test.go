package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertsUnfiltered(t *testing.T) {
	g := newTestGenerator(t, 23)

	s := g.Alerts("", "", "")

	assert.Equal(t, len(alertTemplates), s.TotalAlerts)
	assert.Equal(t, 2, s.CriticalCount)
	assert.Equal(t, 5, s.WarningCount)
	assert.Equal(t, 4, s.InfoCount)
	assert.Equal(t, s.TotalAlerts, s.CriticalCount+s.WarningCount+s.InfoCount)

	// Critical first, then warning, then info.
	lastRank := -1
	for _, a := range s.Alerts {
		rank := severityRank(a.Severity)
		assert.GreaterOrEqual(t, rank, lastRank)
		lastRank = rank

		assert.True(t, strings.HasPrefix(a.ID, "alert_"))
		assert.Len(t, a.ID, len("alert_")+12)
		assert.False(t, a.IsAcknowledged)
	}
}

func TestAlertsFiltersAreConjunctive(t *testing.T) {
	g := newTestGenerator(t, 23)

	s := g.Alerts("loc_hilton_chicago", "", SeverityWarning)
	require.Equal(t, 1, s.TotalAlerts)
	a := s.Alerts[0]
	assert.Equal(t, "loc_hilton_chicago", a.LocationID)
	assert.Equal(t, SeverityWarning, a.Severity)
	assert.Equal(t, AlertPerformance, a.AlertType)

	s = g.Alerts("loc_hotel_dena", AlertStockoutRisk, SeverityCritical)
	require.Equal(t, 1, s.TotalAlerts)
	assert.Equal(t, "prod_coke_20oz", s.Alerts[0].ProductID)

	s = g.Alerts("loc_hotel_dena", AlertOverstock, "")
	assert.Zero(t, s.TotalAlerts)
	assert.Empty(t, s.Alerts)
}

func TestAlertIDsAreStable(t *testing.T) {
	g := newTestGenerator(t, 23)

	first := g.Alerts("", "", "")
	second := g.Alerts("", "", "")
	require.Equal(t, len(first.Alerts), len(second.Alerts))
	for i := range first.Alerts {
		assert.Equal(t, first.Alerts[i].ID, second.Alerts[i].ID)
	}
}

func TestAlertsAffectedCounts(t *testing.T) {
	g := newTestGenerator(t, 23)

	s := g.Alerts("", "", "")
	// Hilton Chicago appears in two templates, every other location once.
	assert.Equal(t, 10, s.LocationsAffected)
	assert.Equal(t, 11, s.ProductsAffected)
}
