package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tools bundles the MCP tool handlers over the API client.
type Tools struct {
	client *Client
	now    func() time.Time
}

// NewTools builds the tool set against the given client.
func NewTools(client *Client) *Tools {
	return &Tools{client: client, now: time.Now}
}

// errResult reports a failed call to the assistant as plain text instead of
// a protocol error, so the conversation can continue.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err))
}

// Register adds every tool to the server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("get_locations",
		mcp.WithDescription("Get all micromarket locations (hotels, offices, airports, hospitals). Optionally filter by type."),
		mcp.WithString("location_type", mcp.Description("Filter by type: hotel, office, airport, hospital")),
	), t.GetLocations)

	s.AddTool(mcp.NewTool("get_pick_list",
		mcp.WithDescription("Get the AI-generated pick list for restocking a specific micromarket location. Shows recommended quantities for each product based on demand forecasts."),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location ID, or 'all' for the aggregate view")),
		mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD), defaults to today")),
	), t.GetPickList)

	s.AddTool(mcp.NewTool("get_all_pick_lists",
		mcp.WithDescription("Get pick lists for all locations at once. Useful for seeing the complete daily restocking plan."),
		mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD), defaults to today")),
	), t.GetAllPickLists)

	s.AddTool(mcp.NewTool("get_demand_forecast",
		mcp.WithDescription("Get AI-powered demand forecast with confidence intervals (P10/P50/P90) for products at a location. Shows factors influencing the forecast like occupancy and events."),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location ID")),
		mcp.WithString("product_id", mcp.Description("Product ID (optional, returns all products if omitted)")),
		mcp.WithString("forecast_date", mcp.Description("Forecast date (YYYY-MM-DD), defaults to tomorrow")),
	), t.GetDemandForecast)

	s.AddTool(mcp.NewTool("get_model_accuracy",
		mcp.WithDescription("Get machine learning model accuracy metrics showing how well forecasts match actual demand. Includes MAE, RMSE, and accuracy percentage."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("product_id", mcp.Description("Filter by product")),
	), t.GetModelAccuracy)

	s.AddTool(mcp.NewTool("get_inventory_status",
		mcp.WithDescription("Get current inventory levels and status (optimal, low, critical, overstock) across products and locations."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("status_filter", mcp.Description("Filter by status: optimal, low, critical, overstock")),
	), t.GetInventoryStatus)

	s.AddTool(mcp.NewTool("get_analytics_summary",
		mcp.WithDescription("Get overall analytics summary including total locations, forecast accuracy, stockout risks, and top-selling products."),
	), t.GetAnalyticsSummary)

	s.AddTool(mcp.NewTool("explain_pick_quantity",
		mcp.WithDescription("Get a detailed explanation for why a specific quantity was recommended for a product at a location."),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location ID")),
		mcp.WithString("product_name", mcp.Required(), mcp.Description("Product name as shown on the pick list")),
		mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD), defaults to today")),
	), t.ExplainPickQuantity)

	s.AddTool(mcp.NewTool("get_product_performance",
		mcp.WithDescription("Get product performance analytics including sales velocity, turnover rates, revenue, and performance scores. Filter by location, product, category, or tier (top_performer, average, underperformer, slow_mover)."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("product_id", mcp.Description("Filter by product")),
		mcp.WithString("category", mcp.Description("Filter by category")),
		mcp.WithString("performance_tier", mcp.Description("Filter by tier: top_performer, average, underperformer, slow_mover")),
	), t.GetProductPerformance)

	s.AddTool(mcp.NewTool("get_top_performers",
		mcp.WithDescription("Get the top performing products ranked by performance score. Shows sales metrics, velocity, and revenue."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithNumber("limit", mcp.Description("Number of top performers to return (1-50, default 10)")),
	), t.GetTopPerformers)

	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Get trend detection data showing week-over-week changes, seasonality patterns, and anomalies. Filter by direction: increasing, decreasing, or stable."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("product_id", mcp.Description("Filter by product")),
		mcp.WithString("trend_direction", mcp.Description("Filter by direction: increasing, decreasing, stable")),
	), t.GetTrends)

	s.AddTool(mcp.NewTool("get_anomalies",
		mcp.WithDescription("Get products with detected anomalies in sales patterns. Filter by severity: low, medium, or high."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("severity", mcp.Description("Filter by severity: low, medium, high")),
	), t.GetAnomalies)

	s.AddTool(mcp.NewTool("get_alerts",
		mcp.WithDescription("Get system alerts for stockouts, overstocks, anomalies, trends, and performance issues. Filter by type (stockout_risk, overstock, anomaly, trend_change, performance) or severity (critical, warning, info)."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
		mcp.WithString("alert_type", mcp.Description("Filter by type: stockout_risk, overstock, anomaly, trend_change, performance")),
		mcp.WithString("severity", mcp.Description("Filter by severity: critical, warning, info")),
	), t.GetAlerts)

	s.AddTool(mcp.NewTool("get_critical_alerts",
		mcp.WithDescription("Get only critical severity alerts requiring immediate attention. These are urgent issues that need to be addressed now."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
	), t.GetCriticalAlerts)

	s.AddTool(mcp.NewTool("get_stockout_risks",
		mcp.WithDescription("Get alerts for products at risk of stockout. Shows which products need immediate restocking attention."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
	), t.GetStockoutRisks)

	s.AddTool(mcp.NewTool("get_real_time_insights",
		mcp.WithDescription("Get a comprehensive real-time overview of stock insights, performance, and alerts for a location or all locations."),
		mcp.WithString("location_id", mcp.Description("Filter by location")),
	), t.GetRealTimeInsights)
}

func (t *Tools) GetLocations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.Locations(ctx, req.GetString("location_type", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(jsonIndent(data)), nil
}

func (t *Tools) GetPickList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return errResult(err), nil
	}
	data, err := t.client.PickList(ctx, locationID, req.GetString("date", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(jsonIndent(data)), nil
}

func (t *Tools) GetAllPickLists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("date", "")
	data, err := t.client.AllPickLists(ctx, date)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatAllPickLists(date, data)), nil
}

func (t *Tools) GetDemandForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return errResult(err), nil
	}
	data, err := t.client.DemandForecast(ctx, locationID,
		req.GetString("product_id", ""), req.GetString("forecast_date", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(jsonIndent(data)), nil
}

func (t *Tools) GetModelAccuracy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.ModelAccuracy(ctx,
		req.GetString("location_id", ""), req.GetString("product_id", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatModelAccuracy(data)), nil
}

func (t *Tools) GetInventoryStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.InventoryStatus(ctx,
		req.GetString("location_id", ""), req.GetString("status_filter", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatInventoryStatus(data)), nil
}

func (t *Tools) GetAnalyticsSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.AnalyticsSummary(ctx)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatAnalyticsSummary(data)), nil
}

func (t *Tools) ExplainPickQuantity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return errResult(err), nil
	}
	productName, err := req.RequireString("product_name")
	if err != nil {
		return errResult(err), nil
	}

	pickList, err := t.client.PickList(ctx, locationID, req.GetString("date", ""))
	if err != nil {
		return errResult(err), nil
	}

	for _, item := range pickList.Items {
		if strings.EqualFold(item.ProductName, productName) {
			return mcp.NewToolResultText(formatExplainPick(item)), nil
		}
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Product '%s' not found in pick list for %s", productName, locationID)), nil
}

func (t *Tools) GetProductPerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.ProductPerformance(ctx,
		req.GetString("location_id", ""),
		req.GetString("product_id", ""),
		req.GetString("category", ""),
		req.GetString("performance_tier", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatProductPerformance(data)), nil
}

func (t *Tools) GetTopPerformers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID := req.GetString("location_id", "")
	data, err := t.client.TopPerformers(ctx, locationID, req.GetInt("limit", 10))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatTopPerformers(locationID, data)), nil
}

func (t *Tools) GetTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.Trends(ctx,
		req.GetString("location_id", ""),
		req.GetString("product_id", ""),
		req.GetString("trend_direction", ""), nil)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatTrends(data)), nil
}

func (t *Tools) GetAnomalies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.Anomalies(ctx,
		req.GetString("location_id", ""), req.GetString("severity", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatAnomalies(data)), nil
}

func (t *Tools) GetAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.Alerts(ctx,
		req.GetString("location_id", ""),
		req.GetString("alert_type", ""),
		req.GetString("severity", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatAlerts(data)), nil
}

func (t *Tools) GetCriticalAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.CriticalAlerts(ctx, req.GetString("location_id", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatCriticalAlerts(data)), nil
}

func (t *Tools) GetStockoutRisks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.client.StockoutRisks(ctx, req.GetString("location_id", ""))
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatStockoutRisks(data)), nil
}

func (t *Tools) GetRealTimeInsights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID := req.GetString("location_id", "")

	alerts, err := t.client.Alerts(ctx, locationID, "", "")
	if err != nil {
		return errResult(err), nil
	}
	inventory, err := t.client.InventoryStatus(ctx, locationID, "")
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(formatRealTimeInsights(t.now(), alerts, inventory)), nil
}
