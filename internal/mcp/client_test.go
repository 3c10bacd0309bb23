package mcp

import (
	"context"
	"math/rand"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	shelfhttp "github.com/mnavar-evidence/shelfsense/internal/interfaces/http"
	"github.com/mnavar-evidence/shelfsense/internal/query"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

// newTestBackend runs the real API router behind httptest and points a
// client at it.
func newTestBackend(t *testing.T) *Client {
	t.Helper()

	gen := synth.New(
		catalog.New(),
		synth.WithRand(rand.New(rand.NewSource(42))),
		synth.WithClock(func() time.Time {
			return time.Date(2025, time.July, 14, 10, 30, 0, 0, time.UTC)
		}),
	)

	cfg := shelfhttp.DefaultServerConfig()
	cfg.Port = 0
	srv, err := shelfhttp.NewServer(cfg, query.NewService(gen))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return NewClient(ts.URL)
}

func TestClientDefaultsBaseURL(t *testing.T) {
	assert.Equal(t, DefaultAPIURL, NewClient("").BaseURL())
	assert.Equal(t, "http://api:9000", NewClient("http://api:9000").BaseURL())
}

func TestClientLocations(t *testing.T) {
	client := newTestBackend(t)

	all, err := client.Locations(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, catalog.New().LocationCount())

	hotels, err := client.Locations(context.Background(), "hotel")
	require.NoError(t, err)
	require.NotEmpty(t, hotels)
	for _, loc := range hotels {
		assert.Equal(t, "hotel", loc.Type)
	}
}

func TestClientPickList(t *testing.T) {
	client := newTestBackend(t)

	list, err := client.PickList(context.Background(), "loc_hotel_dena", "")
	require.NoError(t, err)
	assert.Equal(t, "loc_hotel_dena", list.LocationID)
	assert.Len(t, list.Items, 4)

	found := false
	for _, item := range list.Items {
		if item.ProductID == "prod_pepsi_diet_20oz" {
			found = true
			assert.Equal(t, 16, item.RecommendedQuantity)
			assert.Equal(t, "high", item.Priority)
		}
	}
	assert.True(t, found)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	client := newTestBackend(t)

	_, err := client.PickList(context.Background(), "loc_nowhere", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	_, err = client.Locations(context.Background(), "spaceport")
	require.NoError(t, err) // unknown type filters to an empty list, not an error
}

func TestClientUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.AnalyticsSummary(context.Background())
	require.Error(t, err)
}

func TestClientAlertViews(t *testing.T) {
	client := newTestBackend(t)

	critical, err := client.CriticalAlerts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, critical.TotalAlerts)

	risks, err := client.StockoutRisks(context.Background(), "")
	require.NoError(t, err)
	for _, alert := range risks.Alerts {
		assert.Equal(t, "stockout_risk", alert.AlertType)
	}
}
