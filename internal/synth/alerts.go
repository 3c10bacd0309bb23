package synth

import (
	"crypto/md5"
	"fmt"
	"sort"
	"time"
)

// alertTemplate is one entry of the static alert catalog. IDs are derived
// from title+location so repeated calls return stable identifiers.
type alertTemplate struct {
	alertType         string
	severity          string
	title             string
	description       string
	productID         string
	productName       string
	locationID        string
	locationName      string
	metricValue       *float64
	thresholdValue    *float64
	recommendedAction string
}

func fv(x float64) *float64 { return &x }

var alertTemplates = []alertTemplate{
	{
		alertType: AlertStockoutRisk, severity: SeverityCritical,
		title:       "Critical: Coca-Cola 20oz stockout imminent",
		description: "Stock will be depleted within 4 hours at current sales velocity. Immediate restocking required.",
		productID:   "prod_coke_20oz", productName: "Coca-Cola 20oz",
		locationID: "loc_hotel_dena", locationName: "Hotel Dena",
		metricValue: fv(2), thresholdValue: fv(5),
		recommendedAction: "Add 24 units to today's pick list immediately",
	},
	{
		alertType: AlertStockoutRisk, severity: SeverityCritical,
		title:       "Critical: Red Bull Energy at 0 stock",
		description: "Product is currently out of stock. Lost sales estimated at $47/hour.",
		productID:   "prod_red_bull_energy", productName: "Red Bull Energy",
		locationID: "loc_airport_terminal_b", locationName: "Airport Terminal B",
		metricValue: fv(0), thresholdValue: fv(8),
		recommendedAction: "Emergency restock - add 36 units",
	},
	{
		alertType: AlertStockoutRisk, severity: SeverityWarning,
		title:       "Low stock: Snickers Bar",
		description: "Stock level at 3 units, below minimum threshold of 10. Estimated 6 hours until stockout.",
		productID:   "prod_snickers", productName: "Snickers Bar",
		locationID: "loc_tech_campus", locationName: "Tech Campus",
		metricValue: fv(3), thresholdValue: fv(10),
		recommendedAction: "Include in next scheduled pick list with 20 units",
	},
	{
		alertType: AlertOverstock, severity: SeverityWarning,
		title:       "Overstock: Greek Yogurt approaching expiration",
		description: "28 units in stock, only 5 units sold in past 7 days. Product expires in 4 days.",
		productID:   "prod_yogurt_greek", productName: "Chobani Greek Yogurt 5.3oz",
		locationID: "loc_tech_campus_austin", locationName: "TechCorp Campus - Austin",
		metricValue: fv(28), thresholdValue: fv(15),
		recommendedAction: "Consider markdown pricing or transfer to higher-velocity location",
	},
	{
		alertType: AlertOverstock, severity: SeverityInfo,
		title:       "Excess inventory: Dasani Water",
		description: "Stock level 45 units, 15 above optimal. 12 days of supply at current velocity.",
		productID:   "prod_water_bottle", productName: "Dasani Water 16.9oz",
		locationID: "loc_hilton_chicago", locationName: "Hilton Chicago O'Hare Airport",
		metricValue: fv(45), thresholdValue: fv(30),
		recommendedAction: "Skip this product in next 2 restocking cycles",
	},
	{
		alertType: AlertAnomaly, severity: SeverityWarning,
		title:       "Demand spike: Monster Energy +85%",
		description: "Unusual demand increase detected. Sales 85% above 7-day average, possibly due to nearby event.",
		productID:   "prod_monster_energy", productName: "Monster Energy",
		locationID: "loc_usc_campus", locationName: "USC Campus Center",
		metricValue: fv(85), thresholdValue: fv(50),
		recommendedAction: "Increase pick quantity by 50% for next 3 days",
	},
	{
		alertType: AlertAnomaly, severity: SeverityInfo,
		title:       "Sales pattern change: Coffee sales shifting earlier",
		description: "Peak coffee sales shifted from 9-10 AM to 7-8 AM over past week.",
		productID:   "prod_coffee_to_go_premium", productName: "Coffee To-Go Premium",
		locationID: "loc_marriott_nyc", locationName: "Marriott Marquis - Times Square",
		recommendedAction: "Adjust restocking schedule to ensure morning availability",
	},
	{
		alertType: AlertTrendChange, severity: SeverityInfo,
		title:       "Upward trend: Healthy Protein Bar +22% WoW",
		description: "Consistent demand increase over past 3 weeks. Fitness season driving sales.",
		productID:   "prod_healthy_protein_bar", productName: "Healthy Protein Bar",
		locationID: "loc_medical_center", locationName: "Medical Center",
		metricValue: fv(22), thresholdValue: fv(15),
		recommendedAction: "Increase baseline stock level from 15 to 22 units",
	},
	{
		alertType: AlertTrendChange, severity: SeverityWarning,
		title:       "Declining trend: Pringles -18% MoM",
		description: "Month-over-month decline in sales. May indicate preference shift or quality issue.",
		productID:   "prod_pringles", productName: "Pringles Original 5.5oz",
		locationID: "loc_downtown_plaza", locationName: "Downtown Plaza",
		metricValue: fv(-18), thresholdValue: fv(-15),
		recommendedAction: "Review customer feedback and consider product placement optimization",
	},
	{
		alertType: AlertPerformance, severity: SeverityWarning,
		title:       "Underperforming: Fresh Fruit Cup",
		description: "Performance score 28/100. Low velocity (0.8/day) and high spoilage rate (12%).",
		productID:   "prod_fruit_cup", productName: "Fresh Fruit Cup 8oz",
		locationID: "loc_hilton_chicago", locationName: "Hilton Chicago O'Hare Airport",
		metricValue: fv(28), thresholdValue: fv(40),
		recommendedAction: "Reduce stock levels or discontinue at this location",
	},
	{
		alertType: AlertPerformance, severity: SeverityInfo,
		title:       "Top performer: Starbucks Frappuccino",
		description: "Performance score 92/100. Highest revenue per square foot in beverage category.",
		productID:   "prod_starbucks_frappuccino", productName: "Starbucks Frappuccino",
		locationID: "loc_westin_sf", locationName: "Westin St. Francis - San Francisco",
		metricValue: fv(92), thresholdValue: fv(80),
		recommendedAction: "Consider expanding facings and ensuring consistent availability",
	},
}

// Alerts filters the static alert catalog by location, type and severity
// (empty filters match everything), sorts critical first, and returns the
// list with aggregate counts.
func (g *Generator) Alerts(locationID, alertType, severity string) AlertsSummary {
	alerts := []Alert{} // non-nil so the JSON field is [] when nothing matches
	for _, tpl := range alertTemplates {
		if locationID != "" && tpl.locationID != locationID {
			continue
		}
		if alertType != "" && tpl.alertType != alertType {
			continue
		}
		if severity != "" && tpl.severity != severity {
			continue
		}

		sum := md5.Sum([]byte(tpl.title + "_" + tpl.locationID))
		alerts = append(alerts, Alert{
			ID:                "alert_" + fmt.Sprintf("%x", sum)[:12],
			AlertType:         tpl.alertType,
			Severity:          tpl.severity,
			Title:             tpl.title,
			Description:       tpl.description,
			ProductID:         tpl.productID,
			ProductName:       tpl.productName,
			LocationID:        tpl.locationID,
			LocationName:      tpl.locationName,
			MetricValue:       tpl.metricValue,
			ThresholdValue:    tpl.thresholdValue,
			RecommendedAction: tpl.recommendedAction,
			CreatedAt:         g.now().Add(-time.Duration(g.intBetween(5, 180)) * time.Minute),
			IsAcknowledged:    false,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})

	summary := AlertsSummary{
		TotalAlerts: len(alerts),
		Alerts:      alerts,
	}
	locations := map[string]struct{}{}
	products := map[string]struct{}{}
	for _, a := range alerts {
		switch a.Severity {
		case SeverityCritical:
			summary.CriticalCount++
		case SeverityWarning:
			summary.WarningCount++
		case SeverityInfo:
			summary.InfoCount++
		}
		if a.LocationID != "" {
			locations[a.LocationID] = struct{}{}
		}
		if a.ProductID != "" {
			products[a.ProductID] = struct{}{}
		}
	}
	summary.LocationsAffected = len(locations)
	summary.ProductsAffected = len(products)
	return summary
}

func severityRank(s string) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}
