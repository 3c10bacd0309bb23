package http

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	"github.com/mnavar-evidence/shelfsense/internal/query"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	gen := synth.New(
		catalog.New(),
		synth.WithRand(rand.New(rand.NewSource(42))),
		synth.WithClock(func() time.Time {
			return time.Date(2025, time.July, 14, 10, 30, 0, 0, time.UTC)
		}),
	)

	cfg := DefaultServerConfig()
	cfg.Port = 0 // let the probe bind an ephemeral port

	srv, err := NewServer(cfg, query.NewService(gen))
	require.NoError(t, err)
	return srv
}

func doGet(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestIndexListsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ShelfSense Mock API", body.Message)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "/api/pick-list", body.Endpoints["pick_list"])
}

func TestLocationEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("list all", func(t *testing.T) {
		rec := doGet(t, srv, "/api/locations")
		require.Equal(t, http.StatusOK, rec.Code)

		var locs []catalog.Location
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locs))
		assert.Len(t, locs, 11)
	})

	t.Run("filter by type", func(t *testing.T) {
		rec := doGet(t, srv, "/api/locations?location_type=hotel")
		require.Equal(t, http.StatusOK, rec.Code)

		var locs []catalog.Location
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locs))
		require.NotEmpty(t, locs)
		for _, loc := range locs {
			assert.Equal(t, "hotel", loc.Type)
		}
	})

	t.Run("fetch one", func(t *testing.T) {
		rec := doGet(t, srv, "/api/locations/loc_hotel_dena")
		require.Equal(t, http.StatusOK, rec.Code)

		var loc catalog.Location
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))
		assert.Equal(t, "Hotel Dena", loc.Name)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doGet(t, srv, "/api/locations/loc_nonexistent")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp struct {
			Code      string `json:"code"`
			RequestID string `json:"request_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "not_found", errResp.Code)
		assert.NotEmpty(t, errResp.RequestID)
	})
}

func TestPickListEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("curated rows for hotel dena", func(t *testing.T) {
		rec := doGet(t, srv, "/api/pick-list?location_id=loc_hotel_dena")
		require.Equal(t, http.StatusOK, rec.Code)

		var pl synth.PickList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pl))
		assert.Equal(t, "loc_hotel_dena", pl.LocationID)
		assert.Equal(t, 4, pl.TotalItems)

		var pepsi *synth.PickListItem
		for i := range pl.Items {
			if pl.Items[i].ProductID == "prod_pepsi_diet_20oz" {
				pepsi = &pl.Items[i]
			}
		}
		require.NotNil(t, pepsi)
		assert.Equal(t, 12, pepsi.CurrentStock)
		assert.Equal(t, 16, pepsi.RecommendedQuantity)
		assert.Equal(t, synth.PriorityHigh, pepsi.Priority)
	})

	t.Run("missing location_id is 400", func(t *testing.T) {
		rec := doGet(t, srv, "/api/pick-list")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown location is 404", func(t *testing.T) {
		rec := doGet(t, srv, "/api/pick-list?location_id=loc_nonexistent")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("all locations", func(t *testing.T) {
		rec := doGet(t, srv, "/api/pick-list/all")
		require.Equal(t, http.StatusOK, rec.Code)

		var lists []synth.PickList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lists))
		assert.Len(t, lists, 11)
	})
}

func TestForecastEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/api/forecast/demand")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, srv, "/api/forecast/demand?location_id=loc_hotel_dena&product_id=prod_coke_20oz")
	require.Equal(t, http.StatusOK, rec.Code)

	var results []synth.DemandForecast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "v2.1-lstm", results[0].ModelVersion)
	assert.Equal(t, "2025-07-15", results[0].ForecastDate)
}

func TestCriticalAlertsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/api/alerts/critical?location_id=loc_hotel_dena")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary synth.AlertsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 1, summary.TotalAlerts)
	assert.Equal(t, synth.SeverityCritical, summary.Alerts[0].Severity)
	assert.Equal(t, "loc_hotel_dena", summary.Alerts[0].LocationID)
}

func TestTopPerformersLimitValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/api/analytics/top-performers?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, srv, "/api/analytics/top-performers?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var results []synth.ProductPerformance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 3)
}

func TestUnknownEndpointIs404(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "endpoint_not_found", errResp.Code)
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	srv := newTestServer(t)

	// Generate some traffic first.
	doGet(t, srv, "/health")
	doGet(t, srv, "/api/locations")

	rec := doGet(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shelfsense_http_requests_total")
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/health")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestUnmatchedFiltersReturnEmptyArray(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/locations?location_type=spaceport",
		"/api/products?category=Electronics",
	} {
		rec := doGet(t, srv, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()), path)
	}
}
