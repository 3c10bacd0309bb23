package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

// jsonIndent renders the raw payload appended to most tool summaries, so
// the assistant gets both a digest and the full records.
func jsonIndent(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("marshal error: %v", err)
	}
	return string(b)
}

// num prints a float without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// titleWords uppercases the first letter of each underscore- or
// space-separated word.
func titleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var severityEmoji = map[string]string{
	synth.SeverityCritical: "🔴",
	synth.SeverityWarning:  "🟠",
	synth.SeverityInfo:     "🔵",
}

func formatAllPickLists(date string, lists []synth.PickList) string {
	if date == "" {
		date = "Today"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Pick Lists for %s\n\n", date)
	for _, pl := range lists {
		high := 0
		for _, item := range pl.Items {
			if item.Priority == synth.PriorityHigh {
				high++
			}
		}
		fmt.Fprintf(&b, "## %s\n", pl.LocationName)
		fmt.Fprintf(&b, "- Total items: %d\n", pl.TotalItems)
		fmt.Fprintf(&b, "- Estimated time: %d minutes\n", pl.EstimatedTimeMinutes)
		fmt.Fprintf(&b, "- High priority items: %d\n\n", high)
	}
	return b.String() + "\n\nFull data:\n" + jsonIndent(lists)
}

func formatModelAccuracy(data []synth.ModelAccuracy) string {
	if len(data) == 0 {
		return "No accuracy data found."
	}
	total := 0.0
	for _, item := range data {
		total += item.AccuracyPercentage
	}
	var b strings.Builder
	b.WriteString("# Model Accuracy Summary\n\n")
	fmt.Fprintf(&b, "Average Accuracy: %.1f%%\n", total/float64(len(data)))
	fmt.Fprintf(&b, "Total Samples: %d\n\n", len(data))
	return b.String() + "Full data:\n" + jsonIndent(data)
}

func formatInventoryStatus(data []synth.InventoryStatus) string {
	counts := map[string]int{}
	for _, item := range data {
		counts[item.Status]++
	}
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	var b strings.Builder
	b.WriteString("# Inventory Status Summary\n\n")
	for _, status := range statuses {
		fmt.Fprintf(&b, "- %s: %d items\n", strings.ToUpper(status), counts[status])
	}
	return b.String() + "\n\nFull data:\n" + jsonIndent(data)
}

func formatAnalyticsSummary(data synth.AnalyticsSummary) string {
	var b strings.Builder
	b.WriteString("# ShelfSense Analytics Summary\n\n")
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Total Locations: %d\n", data.TotalLocations)
	fmt.Fprintf(&b, "- Total Products: %d\n", data.TotalProducts)
	fmt.Fprintf(&b, "- Average Forecast Accuracy: %.1f%%\n\n", data.AvgForecastAccuracy)
	b.WriteString("## Today's Picks\n")
	fmt.Fprintf(&b, "- Total picks scheduled: %d\n\n", data.TotalPicksToday)
	b.WriteString("## Inventory Health\n")
	fmt.Fprintf(&b, "- Stockout risks: %d\n", data.StockoutRiskCount)
	fmt.Fprintf(&b, "- Overstock items: %d\n", data.OverstockCount)
	fmt.Fprintf(&b, "- Optimal stock: %d\n\n", data.OptimalStockCount)
	b.WriteString("## Top Selling Products\n")
	for _, p := range data.TopSellingProducts {
		fmt.Fprintf(&b, "- %s: %d units ($%.2f)\n", p.ProductName, p.UnitsSold, p.Revenue)
	}
	return b.String() + "\n\nFull data:\n" + jsonIndent(data)
}

func formatExplainPick(item synth.PickListItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Pick Quantity Explanation: %s\n\n", item.ProductName)
	fmt.Fprintf(&b, "**Location:** %s\n", item.LocationName)
	fmt.Fprintf(&b, "**Recommended Quantity:** %d\n", item.RecommendedQuantity)
	fmt.Fprintf(&b, "**Priority:** %s\n", strings.ToUpper(item.Priority))
	fmt.Fprintf(&b, "**Confidence:** %.1f%%\n\n", item.ConfidenceScore*100)
	b.WriteString("## Current State\n")
	fmt.Fprintf(&b, "- Current stock: %d units\n", item.CurrentStock)
	fmt.Fprintf(&b, "- Last restocked: %s\n\n", item.LastRestocked.Format(time.RFC3339))
	b.WriteString("## Demand Forecast\n")
	fmt.Fprintf(&b, "- P10 (pessimistic): %s units\n", num(item.Forecast.P10))
	fmt.Fprintf(&b, "- P50 (median): %s units\n", num(item.Forecast.P50))
	fmt.Fprintf(&b, "- P90 (optimistic): %s units\n\n", num(item.Forecast.P90))
	b.WriteString("## Reasoning\n")
	b.WriteString(item.Reason + "\n\n")
	b.WriteString("## Calculation\n")
	fmt.Fprintf(&b, "The recommended quantity of %d is calculated by:\n", item.RecommendedQuantity)
	fmt.Fprintf(&b, "1. Using the median forecast (P50: %s units)\n", num(item.Forecast.P50))
	b.WriteString("2. Applying a 30% safety bias for conservative stocking\n")
	b.WriteString("3. Accounting for 3% shrinkage\n")
	fmt.Fprintf(&b, "4. Considering current stock levels (%d units)\n\n", item.CurrentStock)
	b.WriteString("This ensures we maintain adequate inventory while minimizing stockouts.\n")
	return b.String()
}

func formatProductPerformance(data []synth.ProductPerformance) string {
	if len(data) == 0 {
		return "No performance data found for the specified filters."
	}

	var b strings.Builder
	b.WriteString("# Product Performance Analytics\n\n")
	fmt.Fprintf(&b, "**Total Products Analyzed:** %d\n\n", len(data))

	tiers := map[string]int{}
	for _, item := range data {
		tiers[item.PerformanceTier]++
	}
	names := make([]string, 0, len(tiers))
	for tier := range tiers {
		names = append(names, tier)
	}
	sort.Strings(names)

	b.WriteString("## Performance Distribution\n")
	for _, tier := range names {
		fmt.Fprintf(&b, "- %s: %d products\n", titleWords(tier), tiers[tier])
	}

	b.WriteString("\n## Top 5 by Performance Score\n")
	top := data
	if len(top) > 5 {
		top = top[:5]
	}
	for _, item := range top {
		scope := item.LocationName
		if scope == "" {
			scope = "All locations"
		}
		fmt.Fprintf(&b, "- **%s** (%s): %s/100\n", item.ProductName, scope, num(item.PerformanceScore))
		fmt.Fprintf(&b, "  - Daily velocity: %s units/day\n", num(item.DailyVelocity))
		fmt.Fprintf(&b, "  - 30-day revenue: $%.2f\n", item.Revenue30d)
	}

	return b.String() + "\n\nFull data:\n" + jsonIndent(data)
}

func formatTopPerformers(locationID string, data []synth.ProductPerformance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Top %d Performing Products\n\n", len(data))
	if locationID != "" {
		fmt.Fprintf(&b, "**Location filter:** %s\n\n", locationID)
	}
	for i, item := range data {
		fmt.Fprintf(&b, "## %d. %s\n", i+1, item.ProductName)
		fmt.Fprintf(&b, "- **Performance Score:** %s/100 (%s)\n", num(item.PerformanceScore), item.PerformanceTier)
		fmt.Fprintf(&b, "- **Category:** %s\n", item.Category)
		fmt.Fprintf(&b, "- **Daily Velocity:** %s units/day\n", num(item.DailyVelocity))
		fmt.Fprintf(&b, "- **7-Day Revenue:** $%.2f\n", item.Revenue7d)
		fmt.Fprintf(&b, "- **30-Day Revenue:** $%.2f\n", item.Revenue30d)
		fmt.Fprintf(&b, "- **Turnover Rate:** %sx/month\n", num(item.TurnoverRate))
		fmt.Fprintf(&b, "- **Days of Supply:** %s days\n\n", num(item.DaysOfSupply))
	}
	return b.String()
}

func formatTrends(data []synth.TrendData) string {
	if len(data) == 0 {
		return "No trend data found for the specified filters."
	}

	var b strings.Builder
	b.WriteString("# Trend Analysis\n\n")

	directions := map[string]int{}
	for _, item := range data {
		directions[item.TrendDirection]++
	}
	names := make([]string, 0, len(directions))
	for d := range directions {
		names = append(names, d)
	}
	sort.Strings(names)

	directionEmoji := map[string]string{
		synth.TrendIncreasing: "📈",
		synth.TrendDecreasing: "📉",
		synth.TrendStable:     "➡️",
	}

	b.WriteString("## Trend Distribution\n")
	for _, d := range names {
		fmt.Fprintf(&b, "- %s %s: %d products\n", directionEmoji[d], titleWords(d), directions[d])
	}

	var significant []synth.TrendData
	for _, item := range data {
		if math.Abs(item.WeekOverWeekChange) > 15 {
			significant = append(significant, item)
		}
	}
	if len(significant) > 0 {
		b.WriteString("\n## Significant Trends (>15% WoW change)\n")
		if len(significant) > 5 {
			significant = significant[:5]
		}
		for _, item := range significant {
			emoji := "🔻"
			if item.WeekOverWeekChange > 0 {
				emoji = "🔺"
			}
			fmt.Fprintf(&b, "- %s **%s**: %+.1f%% WoW\n", emoji, item.ProductName, item.WeekOverWeekChange)
			if item.LocationName != "" {
				fmt.Fprintf(&b, "  - Location: %s\n", item.LocationName)
			}
			if item.IsSeasonalPeak {
				fmt.Fprintf(&b, "  - Currently in seasonal peak (factor: %sx)\n", num(item.SeasonalityFactor))
			}
		}
	}

	var anomalies []synth.TrendData
	for _, item := range data {
		if item.HasAnomaly {
			anomalies = append(anomalies, item)
		}
	}
	if len(anomalies) > 0 {
		b.WriteString("\n## Detected Anomalies\n")
		for _, item := range anomalies {
			fmt.Fprintf(&b, "- ⚠️ **%s**: %s\n", item.ProductName, item.AnomalyDescription)
			fmt.Fprintf(&b, "  - Severity: %s\n", item.AnomalySeverity)
		}
	}

	return b.String() + "\n\nFull data:\n" + jsonIndent(data)
}

func formatAnomalies(data []synth.TrendData) string {
	if len(data) == 0 {
		return "No anomalies detected for the specified filters. This is good news!"
	}

	anomalyEmoji := map[string]string{"high": "🔴", "medium": "🟠", "low": "🟡"}

	var b strings.Builder
	b.WriteString("# Detected Anomalies\n\n")
	fmt.Fprintf(&b, "**Total anomalies found:** %d\n\n", len(data))

	counts := map[string]int{}
	for _, item := range data {
		counts[item.AnomalySeverity]++
	}
	b.WriteString("## Severity Breakdown\n")
	for _, s := range []string{"high", "medium", "low"} {
		if counts[s] > 0 {
			fmt.Fprintf(&b, "- %s %s: %d\n", anomalyEmoji[s], titleWords(s), counts[s])
		}
	}

	b.WriteString("\n## Anomaly Details\n")
	for _, item := range data {
		emoji, ok := anomalyEmoji[item.AnomalySeverity]
		if !ok {
			emoji = "⚪"
		}
		fmt.Fprintf(&b, "\n### %s %s\n", emoji, item.ProductName)
		if item.LocationName != "" {
			fmt.Fprintf(&b, "- **Location:** %s\n", item.LocationName)
		}
		fmt.Fprintf(&b, "- **Type:** %s\n", item.AnomalyType)
		fmt.Fprintf(&b, "- **Severity:** %s\n", item.AnomalySeverity)
		fmt.Fprintf(&b, "- **Description:** %s\n", item.AnomalyDescription)
		fmt.Fprintf(&b, "- **Trend:** %s (%+.1f%% WoW)\n", item.TrendDirection, item.WeekOverWeekChange)
	}
	return b.String()
}

func formatAlerts(data synth.AlertsSummary) string {
	var b strings.Builder
	b.WriteString("# ShelfSense Alerts\n\n")
	fmt.Fprintf(&b, "**Total Alerts:** %d\n", data.TotalAlerts)
	fmt.Fprintf(&b, "- 🔴 Critical: %d\n", data.CriticalCount)
	fmt.Fprintf(&b, "- 🟠 Warning: %d\n", data.WarningCount)
	fmt.Fprintf(&b, "- 🔵 Info: %d\n\n", data.InfoCount)
	fmt.Fprintf(&b, "**Locations Affected:** %d\n", data.LocationsAffected)
	fmt.Fprintf(&b, "**Products Affected:** %d\n\n", data.ProductsAffected)

	for _, alert := range data.Alerts {
		emoji, ok := severityEmoji[alert.Severity]
		if !ok {
			emoji = "⚪"
		}
		fmt.Fprintf(&b, "---\n\n### %s %s\n", emoji, alert.Title)
		fmt.Fprintf(&b, "**Type:** %s\n", titleWords(alert.AlertType))
		fmt.Fprintf(&b, "**Severity:** %s\n", strings.ToUpper(alert.Severity))
		if alert.LocationName != "" {
			fmt.Fprintf(&b, "**Location:** %s\n", alert.LocationName)
		}
		if alert.ProductName != "" {
			fmt.Fprintf(&b, "**Product:** %s\n", alert.ProductName)
		}
		fmt.Fprintf(&b, "\n%s\n\n", alert.Description)
		fmt.Fprintf(&b, "**Recommended Action:** %s\n\n", alert.RecommendedAction)
	}
	return b.String()
}

func formatCriticalAlerts(data synth.AlertsSummary) string {
	if data.CriticalCount == 0 {
		return "✅ No critical alerts at this time. All systems operating normally."
	}

	var b strings.Builder
	b.WriteString("# 🚨 CRITICAL ALERTS\n\n")
	fmt.Fprintf(&b, "**%d critical issues require immediate attention!**\n\n", data.CriticalCount)

	for _, alert := range data.Alerts {
		fmt.Fprintf(&b, "---\n\n### 🔴 %s\n", alert.Title)
		if alert.LocationName != "" {
			fmt.Fprintf(&b, "**Location:** %s\n", alert.LocationName)
		}
		if alert.ProductName != "" {
			fmt.Fprintf(&b, "**Product:** %s\n", alert.ProductName)
		}
		if alert.MetricValue != nil && alert.ThresholdValue != nil {
			fmt.Fprintf(&b, "**Current Value:** %s (threshold: %s)\n",
				num(*alert.MetricValue), num(*alert.ThresholdValue))
		}
		fmt.Fprintf(&b, "\n%s\n\n", alert.Description)
		fmt.Fprintf(&b, "**⚡ ACTION REQUIRED:** %s\n\n", alert.RecommendedAction)
	}
	return b.String()
}

func formatStockoutRisks(data synth.AlertsSummary) string {
	if data.TotalAlerts == 0 {
		return "✅ No stockout risks detected. All products have adequate inventory levels."
	}

	var b strings.Builder
	b.WriteString("# Stockout Risk Alerts\n\n")
	fmt.Fprintf(&b, "**%d products at risk of stockout**\n\n", data.TotalAlerts)

	for _, alert := range data.Alerts {
		emoji, ok := severityEmoji[alert.Severity]
		if !ok {
			emoji = "⚪"
		}
		fmt.Fprintf(&b, "---\n\n### %s %s\n", emoji, alert.ProductName)
		fmt.Fprintf(&b, "**Location:** %s\n", alert.LocationName)
		fmt.Fprintf(&b, "**Severity:** %s\n", strings.ToUpper(alert.Severity))
		if alert.MetricValue != nil && alert.ThresholdValue != nil {
			fmt.Fprintf(&b, "**Current Stock:** %d units (min: %d)\n",
				int(*alert.MetricValue), int(*alert.ThresholdValue))
		}
		fmt.Fprintf(&b, "\n%s\n\n", alert.Description)
		fmt.Fprintf(&b, "**Action:** %s\n\n", alert.RecommendedAction)
	}
	return b.String()
}

func formatRealTimeInsights(now time.Time, alerts synth.AlertsSummary, inventory []synth.InventoryStatus) string {
	var b strings.Builder
	b.WriteString("# Real-Time Stock Insights\n\n")
	fmt.Fprintf(&b, "*Generated at: %s*\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## 🚨 Alert Status\n")
	if alerts.CriticalCount > 0 {
		fmt.Fprintf(&b, "- **🔴 %d CRITICAL** - Immediate action required!\n", alerts.CriticalCount)
	}
	if alerts.WarningCount > 0 {
		fmt.Fprintf(&b, "- 🟠 %d warnings\n", alerts.WarningCount)
	}
	if alerts.InfoCount > 0 {
		fmt.Fprintf(&b, "- 🔵 %d informational\n", alerts.InfoCount)
	}
	if alerts.TotalAlerts == 0 {
		b.WriteString("- ✅ No active alerts\n")
	}

	counts := map[string]int{}
	for _, item := range inventory {
		counts[item.Status]++
	}
	statusEmoji := map[string]string{
		synth.StatusCritical:  "🔴",
		synth.StatusLow:       "🟠",
		synth.StatusOptimal:   "🟢",
		synth.StatusOverstock: "🔵",
	}
	b.WriteString("\n## 📦 Inventory Health\n")
	for _, status := range []string{synth.StatusCritical, synth.StatusLow, synth.StatusOptimal, synth.StatusOverstock} {
		if counts[status] > 0 {
			fmt.Fprintf(&b, "- %s %s: %d items\n", statusEmoji[status], titleWords(status), counts[status])
		}
	}

	var critical []synth.InventoryStatus
	for _, item := range inventory {
		if item.Status == synth.StatusCritical {
			critical = append(critical, item)
		}
	}
	if len(critical) > 0 {
		b.WriteString("\n## ⚠️ Critical Stock Items\n")
		if len(critical) > 5 {
			critical = critical[:5]
		}
		for _, item := range critical {
			fmt.Fprintf(&b, "- **%s** at %s: %d units ", item.ProductName, item.LocationName, item.CurrentStock)
			if item.DaysUntilStockout != nil {
				fmt.Fprintf(&b, "(%.1f days until stockout)\n", *item.DaysUntilStockout)
			} else {
				b.WriteString("\n")
			}
		}
	}

	var criticalAlerts []synth.Alert
	for _, a := range alerts.Alerts {
		if a.Severity == synth.SeverityCritical {
			criticalAlerts = append(criticalAlerts, a)
		}
	}
	if len(criticalAlerts) > 0 {
		b.WriteString("\n## 🚨 Critical Actions Required\n")
		if len(criticalAlerts) > 3 {
			criticalAlerts = criticalAlerts[:3]
		}
		for _, alert := range criticalAlerts {
			fmt.Fprintf(&b, "- **%s**\n", alert.Title)
			fmt.Fprintf(&b, "  → %s\n", alert.RecommendedAction)
		}
	}
	return b.String()
}
