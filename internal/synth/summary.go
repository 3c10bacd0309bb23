package synth

// AnalyticsSummary is the cross-location overview. The leaderboard and the
// underperformer list are fixed demo content; only the counts vary.
func (g *Generator) AnalyticsSummary() AnalyticsSummary {
	picksToday := 0
	for i := 0; i < g.cat.LocationCount(); i++ {
		picksToday += g.intBetween(12, 18)
	}

	return AnalyticsSummary{
		TotalLocations:      g.cat.LocationCount(),
		TotalProducts:       g.cat.ProductCount(),
		AvgForecastAccuracy: 86.5,
		TotalPicksToday:     picksToday,
		StockoutRiskCount:   g.intBetween(5, 15),
		OverstockCount:      g.intBetween(3, 10),
		OptimalStockCount:   g.intBetween(50, 80),
		TopSellingProducts: []TopSeller{
			{ProductName: "Coca-Cola Classic 12oz", UnitsSold: 1250, Revenue: 3125.0},
			{ProductName: "Dasani Water 16.9oz", UnitsSold: 1180, Revenue: 2360.0},
			{ProductName: "Snickers Bar 1.86oz", UnitsSold: 890, Revenue: 1335.0},
		},
		UnderperformingLocations: []LocationIssue{
			{LocationName: "TechCorp Campus - Austin", Accuracy: 72.5, Reason: "Hybrid work variability"},
		},
	}
}
