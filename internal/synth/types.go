package synth

import "time"

// Priority levels for pick list items.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Inventory status values.
const (
	StatusOptimal   = "optimal"
	StatusLow       = "low"
	StatusCritical  = "critical"
	StatusOverstock = "overstock"
)

// Performance tiers, classified on fixed score boundaries.
const (
	TierTopPerformer   = "top_performer"
	TierAverage        = "average"
	TierUnderperformer = "underperformer"
	TierSlowMover      = "slow_mover"
)

// Trend directions.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Alert severities, ordered critical > warning > info.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Alert types.
const (
	AlertStockoutRisk = "stockout_risk"
	AlertOverstock    = "overstock"
	AlertAnomaly      = "anomaly"
	AlertTrendChange  = "trend_change"
	AlertPerformance  = "performance"
)

// ForecastConfidence is a percentile-indexed demand distribution for one
// product/location/date. The synthetic fallback draws the p10 and p90 offsets
// independently, so p10 <= p50 <= p90 is not clamped.
type ForecastConfidence struct {
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}

// PickListItem is one recommended restock line.
type PickListItem struct {
	ID                  string             `json:"id"`
	ProductID           string             `json:"product_id"`
	ProductName         string             `json:"product_name"`
	LocationID          string             `json:"location_id"`
	LocationName        string             `json:"location_name"`
	CurrentStock        int                `json:"current_stock"`
	Demand              int                `json:"demand"`
	Forecast            ForecastConfidence `json:"forecast"`
	RecommendedQuantity int                `json:"recommended_quantity"`
	Priority            string             `json:"priority"`
	ConfidenceScore     float64            `json:"confidence_score"`
	StockoutCost        float64            `json:"stockout_cost"`
	AIFactors           []string           `json:"ai_factors"`
	Reason              string             `json:"reason"`
	LastRestocked       time.Time          `json:"last_restocked"`
	LastUpdated         time.Time          `json:"last_updated"`
}

// PickList is the restocking plan for one location and date.
type PickList struct {
	Date                 string         `json:"date"`
	LocationID           string         `json:"location_id"`
	LocationName         string         `json:"location_name"`
	Items                []PickListItem `json:"items"`
	TotalItems           int            `json:"total_items"`
	EstimatedTimeMinutes int            `json:"estimated_time_minutes"`
	Status               string         `json:"status"`
}

// ModelAccuracy reports forecast model error metrics for a product/location.
type ModelAccuracy struct {
	ProductID          string    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	LocationID         string    `json:"location_id"`
	LocationName       string    `json:"location_name"`
	AccuracyPercentage float64   `json:"accuracy_percentage"`
	MAE                float64   `json:"mae"`
	RMSE               float64   `json:"rmse"`
	Bias               float64   `json:"bias"`
	SamplesCount       int       `json:"samples_count"`
	LastUpdated        time.Time `json:"last_updated"`
}

// InventoryStatus classifies current stock against the min/max band.
type InventoryStatus struct {
	ProductID         string   `json:"product_id"`
	ProductName       string   `json:"product_name"`
	LocationID        string   `json:"location_id"`
	LocationName      string   `json:"location_name"`
	CurrentStock      int      `json:"current_stock"`
	MinStock          int      `json:"min_stock"`
	MaxStock          int      `json:"max_stock"`
	Status            string   `json:"status"`
	DaysUntilStockout *float64 `json:"days_until_stockout"`
}

// DemandForecast is a percentile forecast plus the factors that shaped it.
type DemandForecast struct {
	ProductID    string             `json:"product_id"`
	ProductName  string             `json:"product_name"`
	LocationID   string             `json:"location_id"`
	LocationName string             `json:"location_name"`
	ForecastDate string             `json:"forecast_date"`
	Forecast     ForecastConfidence `json:"forecast"`
	Factors      map[string]any     `json:"factors"`
	ModelVersion string             `json:"model_version"`
}

// TopSeller is one row of the analytics summary leaderboard.
type TopSeller struct {
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// LocationIssue flags a location dragging forecast accuracy down.
type LocationIssue struct {
	LocationName string  `json:"location_name"`
	Accuracy     float64 `json:"accuracy"`
	Reason       string  `json:"reason"`
}

// AnalyticsSummary is the cross-location overview.
type AnalyticsSummary struct {
	TotalLocations           int             `json:"total_locations"`
	TotalProducts            int             `json:"total_products"`
	AvgForecastAccuracy      float64         `json:"avg_forecast_accuracy"`
	TotalPicksToday          int             `json:"total_picks_today"`
	StockoutRiskCount        int             `json:"stockout_risk_count"`
	OverstockCount           int             `json:"overstock_count"`
	OptimalStockCount        int             `json:"optimal_stock_count"`
	TopSellingProducts       []TopSeller     `json:"top_selling_products"`
	UnderperformingLocations []LocationIssue `json:"underperforming_locations"`
}

// ProductPerformance carries sales velocity, turnover and the weighted
// performance score for one product, optionally scoped to a location.
type ProductPerformance struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Category         string  `json:"category"`
	LocationID       string  `json:"location_id,omitempty"`
	LocationName     string  `json:"location_name,omitempty"`
	UnitsSold7d      int     `json:"units_sold_7d"`
	UnitsSold30d     int     `json:"units_sold_30d"`
	Revenue7d        float64 `json:"revenue_7d"`
	Revenue30d       float64 `json:"revenue_30d"`
	DailyVelocity    float64 `json:"daily_velocity"`
	TurnoverRate     float64 `json:"turnover_rate"`
	DaysOfSupply     float64 `json:"days_of_supply"`
	SellThroughRate  float64 `json:"sell_through_rate"`
	GrossMargin      float64 `json:"gross_margin"`
	PerformanceScore float64 `json:"performance_score"`
	PerformanceTier  string  `json:"performance_tier"`
}

// TrendData describes direction, seasonality and optional anomaly flags for
// one product, optionally scoped to a location.
type TrendData struct {
	ProductID            string  `json:"product_id"`
	ProductName          string  `json:"product_name"`
	LocationID           string  `json:"location_id,omitempty"`
	LocationName         string  `json:"location_name,omitempty"`
	TrendDirection       string  `json:"trend_direction"`
	TrendStrength        float64 `json:"trend_strength"`
	WeekOverWeekChange   float64 `json:"week_over_week_change"`
	MonthOverMonthChange float64 `json:"month_over_month_change"`
	SeasonalityFactor    float64 `json:"seasonality_factor"`
	IsSeasonalPeak       bool    `json:"is_seasonal_peak"`
	SeasonalPattern      string  `json:"seasonal_pattern,omitempty"`
	HasAnomaly           bool    `json:"has_anomaly"`
	AnomalyType          string  `json:"anomaly_type,omitempty"`
	AnomalySeverity      string  `json:"anomaly_severity,omitempty"`
	AnomalyDescription   string  `json:"anomaly_description,omitempty"`
}

// Alert is a single actionable notification derived from a template.
type Alert struct {
	ID                string    `json:"id"`
	AlertType         string    `json:"alert_type"`
	Severity          string    `json:"severity"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ProductID         string    `json:"product_id,omitempty"`
	ProductName       string    `json:"product_name,omitempty"`
	LocationID        string    `json:"location_id,omitempty"`
	LocationName      string    `json:"location_name,omitempty"`
	MetricValue       *float64  `json:"metric_value"`
	ThresholdValue    *float64  `json:"threshold_value"`
	RecommendedAction string    `json:"recommended_action"`
	CreatedAt         time.Time `json:"created_at"`
	IsAcknowledged    bool      `json:"is_acknowledged"`
}

// AlertsSummary is the filtered alert list plus aggregate counts.
type AlertsSummary struct {
	TotalAlerts       int     `json:"total_alerts"`
	CriticalCount     int     `json:"critical_count"`
	WarningCount      int     `json:"warning_count"`
	InfoCount         int     `json:"info_count"`
	Alerts            []Alert `json:"alerts"`
	LocationsAffected int     `json:"locations_affected"`
	ProductsAffected  int     `json:"products_affected"`
}
