// Package mcp adapts the ShelfSense HTTP API into MCP tools so assistants
// can query inventory, forecasts and alerts over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

// DefaultAPIURL is used when no backend is configured.
const DefaultAPIURL = "http://localhost:8000"

// Client is a thin typed wrapper over the ShelfSense API. One request per
// call, no retries: failures surface to the tool layer as errors.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client against the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURL reports the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// get fetches path with query params and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) Locations(ctx context.Context, locationType string) ([]catalog.Location, error) {
	params := url.Values{}
	if locationType != "" {
		params.Set("location_type", locationType)
	}
	var out []catalog.Location
	return out, c.get(ctx, "/api/locations", params, &out)
}

func (c *Client) Products(ctx context.Context, category string) ([]catalog.Product, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	var out []catalog.Product
	return out, c.get(ctx, "/api/products", params, &out)
}

func (c *Client) PickList(ctx context.Context, locationID, date string) (synth.PickList, error) {
	params := url.Values{}
	params.Set("location_id", locationID)
	if date != "" {
		params.Set("date", date)
	}
	var out synth.PickList
	return out, c.get(ctx, "/api/pick-list", params, &out)
}

func (c *Client) AllPickLists(ctx context.Context, date string) ([]synth.PickList, error) {
	params := url.Values{}
	if date != "" {
		params.Set("date", date)
	}
	var out []synth.PickList
	return out, c.get(ctx, "/api/pick-list/all", params, &out)
}

func (c *Client) DemandForecast(ctx context.Context, locationID, productID, forecastDate string) ([]synth.DemandForecast, error) {
	params := url.Values{}
	params.Set("location_id", locationID)
	if productID != "" {
		params.Set("product_id", productID)
	}
	if forecastDate != "" {
		params.Set("forecast_date", forecastDate)
	}
	var out []synth.DemandForecast
	return out, c.get(ctx, "/api/forecast/demand", params, &out)
}

func (c *Client) ModelAccuracy(ctx context.Context, locationID, productID string) ([]synth.ModelAccuracy, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if productID != "" {
		params.Set("product_id", productID)
	}
	var out []synth.ModelAccuracy
	return out, c.get(ctx, "/api/models/product-accuracy", params, &out)
}

func (c *Client) InventoryStatus(ctx context.Context, locationID, statusFilter string) ([]synth.InventoryStatus, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if statusFilter != "" {
		params.Set("status_filter", statusFilter)
	}
	var out []synth.InventoryStatus
	return out, c.get(ctx, "/api/inventory/status", params, &out)
}

func (c *Client) AnalyticsSummary(ctx context.Context) (synth.AnalyticsSummary, error) {
	var out synth.AnalyticsSummary
	return out, c.get(ctx, "/api/analytics/summary", nil, &out)
}

func (c *Client) ProductPerformance(ctx context.Context, locationID, productID, category, tier string) ([]synth.ProductPerformance, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if productID != "" {
		params.Set("product_id", productID)
	}
	if category != "" {
		params.Set("category", category)
	}
	if tier != "" {
		params.Set("performance_tier", tier)
	}
	var out []synth.ProductPerformance
	return out, c.get(ctx, "/api/analytics/product-performance", params, &out)
}

func (c *Client) TopPerformers(ctx context.Context, locationID string, limit int) ([]synth.ProductPerformance, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	var out []synth.ProductPerformance
	return out, c.get(ctx, "/api/analytics/top-performers", params, &out)
}

func (c *Client) Trends(ctx context.Context, locationID, productID, direction string, hasAnomaly *bool) ([]synth.TrendData, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if productID != "" {
		params.Set("product_id", productID)
	}
	if direction != "" {
		params.Set("trend_direction", direction)
	}
	if hasAnomaly != nil {
		params.Set("has_anomaly", strconv.FormatBool(*hasAnomaly))
	}
	var out []synth.TrendData
	return out, c.get(ctx, "/api/analytics/trends", params, &out)
}

func (c *Client) Anomalies(ctx context.Context, locationID, severity string) ([]synth.TrendData, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if severity != "" {
		params.Set("severity", severity)
	}
	var out []synth.TrendData
	return out, c.get(ctx, "/api/analytics/anomalies", params, &out)
}

func (c *Client) Alerts(ctx context.Context, locationID, alertType, severity string) (synth.AlertsSummary, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	if alertType != "" {
		params.Set("alert_type", alertType)
	}
	if severity != "" {
		params.Set("severity", severity)
	}
	var out synth.AlertsSummary
	return out, c.get(ctx, "/api/alerts", params, &out)
}

func (c *Client) CriticalAlerts(ctx context.Context, locationID string) (synth.AlertsSummary, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	var out synth.AlertsSummary
	return out, c.get(ctx, "/api/alerts/critical", params, &out)
}

func (c *Client) StockoutRisks(ctx context.Context, locationID string) (synth.AlertsSummary, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("location_id", locationID)
	}
	var out synth.AlertsSummary
	return out, c.get(ctx, "/api/alerts/stockout-risks", params, &out)
}
