package synth

import (
	"fmt"
	"math"
	"time"
)

// TrendData rolls a direction bucket, derives seasonality from the current
// month/weekday per category, and flags an anomaly 10% of the time.
func (g *Generator) TrendData(productID, locationID string) (TrendData, error) {
	product, err := g.cat.Product(productID)
	if err != nil {
		return TrendData{}, err
	}
	var locID, locName string
	if locationID != "" {
		loc, err := g.cat.Location(locationID)
		if err != nil {
			return TrendData{}, err
		}
		locID, locName = loc.ID, loc.Name
	}

	var direction string
	var wow, mom float64
	switch roll := g.float64n(); {
	case roll < 0.3:
		direction = TrendIncreasing
		wow = g.uniform(5, 25)
		mom = g.uniform(10, 40)
	case roll < 0.6:
		direction = TrendDecreasing
		wow = g.uniform(-25, -5)
		mom = g.uniform(-35, -10)
	default:
		direction = TrendStable
		wow = g.uniform(-5, 5)
		mom = g.uniform(-8, 8)
	}

	// Normalized against a 30% swing; increasing-bucket draws above 30
	// push it past 1.0 and stay unclamped.
	strength := math.Abs(wow) / 30

	now := g.now()
	var seasonality float64
	var seasonalPeak bool
	var seasonalPattern string
	switch {
	case product.Category == "Beverages" && now.Month() >= time.June && now.Month() <= time.August:
		seasonality = g.uniform(1.15, 1.35)
		seasonalPeak = true
		seasonalPattern = "annual"
	case product.Category == "Snacks":
		seasonality = g.uniform(1.05, 1.20)
		// Weekend runs Friday through Sunday here.
		wd := (int(now.Weekday()) + 6) % 7
		seasonalPeak = wd >= 4
		seasonalPattern = "weekly"
	default:
		seasonality = g.uniform(0.95, 1.05)
	}

	hasAnomaly := g.float64n() < 0.10
	var anomalyType, anomalySeverity, anomalyDescription string
	if hasAnomaly {
		anomalyType = pick(g, []string{"spike", "drop", "unusual_pattern"})
		anomalySeverity = pick(g, []string{"low", "medium", "high"})
		switch anomalyType {
		case "spike":
			anomalyDescription = fmt.Sprintf("Unusual demand spike detected - %d%% above normal", g.intBetween(40, 80))
		case "drop":
			anomalyDescription = fmt.Sprintf("Unexpected demand drop - %d%% below normal", g.intBetween(30, 60))
		default:
			anomalyDescription = "Irregular sales pattern detected over the past 48 hours"
		}
	}

	return TrendData{
		ProductID:            product.ID,
		ProductName:          product.Name,
		LocationID:           locID,
		LocationName:         locName,
		TrendDirection:       direction,
		TrendStrength:        round3(strength),
		WeekOverWeekChange:   round1(wow),
		MonthOverMonthChange: round1(mom),
		SeasonalityFactor:    round2(seasonality),
		IsSeasonalPeak:       seasonalPeak,
		SeasonalPattern:      seasonalPattern,
		HasAnomaly:           hasAnomaly,
		AnomalyType:          anomalyType,
		AnomalySeverity:      anomalySeverity,
		AnomalyDescription:   anomalyDescription,
	}, nil
}
