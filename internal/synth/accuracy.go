package synth

// ModelAccuracy reports forecast error metrics for one product/location pair.
// Hotels are the most predictable venue type, offices the least.
func (g *Generator) ModelAccuracy(productID, locationID string) (ModelAccuracy, error) {
	product, err := g.cat.Product(productID)
	if err != nil {
		return ModelAccuracy{}, err
	}
	loc, err := g.cat.Location(locationID)
	if err != nil {
		return ModelAccuracy{}, err
	}

	var accuracy, mae float64
	switch loc.Type {
	case "hotel":
		accuracy = g.uniform(0.82, 0.94)
		mae = g.uniform(0.8, 2.5)
	case "office":
		// Hybrid work schedules make office demand noisier.
		accuracy = g.uniform(0.70, 0.85)
		mae = g.uniform(1.5, 3.5)
	default:
		accuracy = g.uniform(0.75, 0.88)
		mae = g.uniform(1.0, 3.0)
	}

	return ModelAccuracy{
		ProductID:          product.ID,
		ProductName:        product.Name,
		LocationID:         loc.ID,
		LocationName:       loc.Name,
		AccuracyPercentage: accuracy * 100,
		MAE:                mae,
		RMSE:               mae * 1.2,
		Bias:               g.uniform(-0.5, 0.5),
		SamplesCount:       g.intBetween(30, 120),
		LastUpdated:        g.now(),
	}, nil
}
