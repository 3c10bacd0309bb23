package synth

// InventoryStatus draws a stock band and classifies the current level against
// it. days_until_stockout is only populated for low/critical stock.
func (g *Generator) InventoryStatus(productID, locationID string) (InventoryStatus, error) {
	product, err := g.cat.Product(productID)
	if err != nil {
		return InventoryStatus{}, err
	}
	loc, err := g.cat.Location(locationID)
	if err != nil {
		return InventoryStatus{}, err
	}

	minStock := g.intBetween(3, 8)
	maxStock := minStock + g.intBetween(10, 25)
	current := g.intBetween(0, maxStock+5)

	var status string
	var daysUntilStockout *float64
	switch {
	case current < minStock:
		status = StatusLow
		if float64(current) < float64(minStock)*0.5 {
			status = StatusCritical
		}
		days := float64(current) / g.uniform(2, 5)
		daysUntilStockout = &days
	case current > maxStock:
		status = StatusOverstock
	default:
		status = StatusOptimal
	}

	return InventoryStatus{
		ProductID:         product.ID,
		ProductName:       product.Name,
		LocationID:        loc.ID,
		LocationName:      loc.Name,
		CurrentStock:      current,
		MinStock:          minStock,
		MaxStock:          maxStock,
		Status:            status,
		DaysUntilStockout: daysUntilStockout,
	}, nil
}
