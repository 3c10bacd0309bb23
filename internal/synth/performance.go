package synth

import "math"

type categoryProfile struct {
	velocity float64
	margin   float64
}

var categoryProfiles = map[string]categoryProfile{
	"Beverages":     {velocity: 1.5, margin: 0.35},
	"Snacks":        {velocity: 1.2, margin: 0.40},
	"Fresh Food":    {velocity: 0.8, margin: 0.45},
	"Health":        {velocity: 0.5, margin: 0.50},
	"Miscellaneous": {velocity: 0.6, margin: 0.38},
}

var defaultProfile = categoryProfile{velocity: 1.0, margin: 0.35}

// ProductPerformance derives sales velocity, turnover and a weighted score
// for one product, optionally scoped to a location. An empty locationID
// yields unscoped metrics.
func (g *Generator) ProductPerformance(productID, locationID string) (ProductPerformance, error) {
	product, err := g.cat.Product(productID)
	if err != nil {
		return ProductPerformance{}, err
	}

	profile, ok := categoryProfiles[product.Category]
	if !ok {
		profile = defaultProfile
	}

	baseDaily := g.uniform(3, 12) * profile.velocity
	var locID, locName string
	if locationID != "" {
		loc, err := g.cat.Location(locationID)
		if err != nil {
			return ProductPerformance{}, err
		}
		locID, locName = loc.ID, loc.Name
		if loc.OccupancyRate > 0 {
			baseDaily *= loc.OccupancyRate
		}
	}

	units7d := int(baseDaily * 7 * g.uniform(0.85, 1.15))
	units30d := int(baseDaily * 30 * g.uniform(0.9, 1.1))

	dailyVelocity := round2(float64(units30d) / 30)
	currentStock := g.intBetween(5, 30)
	daysOfSupply := round1(float64(currentStock) / math.Max(dailyVelocity, 0.1))

	avgInventory := g.intBetween(15, 40)
	turnoverRate := round2(float64(units30d) / math.Max(float64(avgInventory), 1))

	sellThrough := math.Min(100, round1(float64(units30d)/math.Max(float64(avgInventory)*30/7, 1)*100))
	grossMargin := round1(profile.margin * 100 * g.uniform(0.9, 1.1))

	// Weighted score: velocity 30%, margin 25%, turnover 25%, sell-through 20%.
	velocityScore := math.Min(100, dailyVelocity/10*100)
	turnoverScore := math.Min(100, turnoverRate/4*100)
	score := round1(velocityScore*0.30 + grossMargin*0.25 + turnoverScore*0.25 + sellThrough*0.20)

	var tier string
	switch {
	case score >= 75:
		tier = TierTopPerformer
	case score >= 50:
		tier = TierAverage
	case score >= 30:
		tier = TierUnderperformer
	default:
		tier = TierSlowMover
	}

	return ProductPerformance{
		ProductID:        product.ID,
		ProductName:      product.Name,
		Category:         product.Category,
		LocationID:       locID,
		LocationName:     locName,
		UnitsSold7d:      units7d,
		UnitsSold30d:     units30d,
		Revenue7d:        round2(float64(units7d) * product.Price),
		Revenue30d:       round2(float64(units30d) * product.Price),
		DailyVelocity:    dailyVelocity,
		TurnoverRate:     turnoverRate,
		DaysOfSupply:     daysOfSupply,
		SellThroughRate:  sellThrough,
		GrossMargin:      grossMargin,
		PerformanceScore: score,
		PerformanceTier:  tier,
	}, nil
}
