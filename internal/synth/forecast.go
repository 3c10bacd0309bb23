package synth

import "math"

// ModelVersion tags every demand forecast response.
const ModelVersion = "v2.1-lstm"

// DemandForecast draws a base demand scaled by occupancy and adjusted for a
// randomly chosen special event, and reports the factors alongside the
// percentile band.
func (g *Generator) DemandForecast(productID, locationID, forecastDate string) (DemandForecast, error) {
	product, err := g.cat.Product(productID)
	if err != nil {
		return DemandForecast{}, err
	}
	loc, err := g.cat.Location(locationID)
	if err != nil {
		return DemandForecast{}, err
	}

	baseDemand := g.intBetween(5, 20)
	occupancy := loc.OccupancyRate
	if occupancy > 0 {
		baseDemand = int(float64(baseDemand) * occupancy)
	} else {
		occupancy = 0.8
	}

	specialEvent := pick(g, []any{nil, "conference", "holiday"})
	factors := map[string]any{
		"occupancy_rate":     occupancy,
		"day_of_week":        "Monday",
		"weather_impact":     pick(g, []string{"neutral", "positive", "negative"}),
		"special_events":     specialEvent,
		"seasonality_factor": round2(g.uniform(0.9, 1.1)),
	}
	if specialEvent != nil {
		baseDemand = int(float64(baseDemand) * 1.2)
	}

	return DemandForecast{
		ProductID:    product.ID,
		ProductName:  product.Name,
		LocationID:   loc.ID,
		LocationName: loc.Name,
		ForecastDate: forecastDate,
		Forecast: ForecastConfidence{
			P10: math.Max(1, float64(baseDemand-g.intBetween(2, 5))),
			P50: float64(baseDemand),
			P90: float64(baseDemand + g.intBetween(3, 7)),
		},
		Factors:      factors,
		ModelVersion: ModelVersion,
	}, nil
}
