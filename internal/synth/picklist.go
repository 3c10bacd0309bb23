package synth

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
)

// AllLocations is the pick-list pseudo-id that aggregates every curated row.
const AllLocations = "all"

// demoPickRow is one curated, UI-aligned pick list line. Stock, demand,
// quantities and factor text are literal; only timestamps are derived.
type demoPickRow struct {
	locationID        string
	locationName      string
	productID         string
	productName       string
	stock             int
	demand            int
	pickQty           int
	confidence        float64
	stockoutCost      float64
	aiFactors         []string
	updatedMinutesAgo int
	priority          string
}

var demoPickRows = []demoPickRow{
	{
		locationID: "loc_usc_campus", locationName: "USC Campus Center",
		productID: "prod_healthy_protein_bar", productName: "Healthy Protein Bar",
		stock: 18, demand: 22, pickQty: 4, confidence: 0.79, stockoutCost: 45,
		aiFactors: []string{"Summer fitness focus (+10%)"}, updatedMinutesAgo: 240, priority: PriorityMedium,
	},
	{
		locationID: "loc_usc_campus", locationName: "USC Campus Center",
		productID: "prod_coffee_to_go_premium", productName: "Coffee To-Go Premium",
		stock: 12, demand: 28, pickQty: 16, confidence: 0.85, stockoutCost: 134,
		aiFactors: []string{"Summer session: 30% enrollment (+8%)"}, updatedMinutesAgo: 180, priority: PriorityMedium,
	},
	{
		locationID: "loc_hotel_dena", locationName: "Hotel Dena",
		productID: "prod_pepsi_diet_20oz", productName: "Pepsi Diet 20oz",
		stock: 12, demand: 28, pickQty: 16, confidence: 0.87, stockoutCost: 95,
		aiFactors: []string{"Business travelers prefer diet (+3%)"}, updatedMinutesAgo: 180, priority: PriorityHigh,
	},
	{
		locationID: "loc_tech_campus", locationName: "Tech Campus",
		productID: "prod_monster_energy", productName: "Monster Energy",
		stock: 24, demand: 45, pickQty: 21, confidence: 0.88, stockoutCost: 156,
		aiFactors: []string{"Summer coding bootcamp (+15%)"}, updatedMinutesAgo: 45, priority: PriorityMedium,
	},
	{
		locationID: "loc_airport_terminal_b", locationName: "Airport Terminal B",
		productID: "prod_travel_snack_mix", productName: "Travel Snack Mix",
		stock: 5, demand: 48, pickQty: 43, confidence: 0.89, stockoutCost: 356,
		aiFactors: []string{"Summer vacation surge (+35%)"}, updatedMinutesAgo: 15, priority: PriorityMedium,
	},
	{
		locationID: "loc_hotel_dena", locationName: "Hotel Dena",
		productID: "prod_snickers", productName: "Snickers Bar",
		stock: 15, demand: 42, pickQty: 27, confidence: 0.91, stockoutCost: 67,
		aiFactors: []string{"Checkout impulse buying (+15%)"}, updatedMinutesAgo: 60, priority: PriorityHigh,
	},
	{
		locationID: "loc_tech_campus", locationName: "Tech Campus",
		productID: "prod_coke_20oz", productName: "Coca-Cola 20oz",
		stock: 16, demand: 38, pickQty: 22, confidence: 0.91, stockoutCost: 89,
		aiFactors: []string{"Cafeteria partnership (+10%)"}, updatedMinutesAgo: 60, priority: PriorityMedium,
	},
	{
		locationID: "loc_hotel_dena", locationName: "Hotel Dena",
		productID: "prod_life_water_20oz", productName: "Life Water Premium 20oz",
		stock: 8, demand: 32, pickQty: 24, confidence: 0.92, stockoutCost: 180,
		aiFactors: []string{"Hotel: 89% occupancy (+12%)"}, updatedMinutesAgo: 120, priority: PriorityHigh,
	},
	{
		locationID: "loc_downtown_plaza", locationName: "Downtown Plaza",
		productID: "prod_starbucks_frappuccino", productName: "Starbucks Frappuccino",
		stock: 8, demand: 52, pickQty: 44, confidence: 0.93, stockoutCost: 298,
		aiFactors: []string{"Office workers: 85% occupancy (+15%)"}, updatedMinutesAgo: 20, priority: PriorityLow,
	},
	{
		locationID: "loc_hotel_dena", locationName: "Hotel Dena",
		productID: "prod_red_bull_energy", productName: "Red Bull Energy",
		stock: 6, demand: 35, pickQty: 29, confidence: 0.94, stockoutCost: 245,
		aiFactors: []string{"Business meetings surge (+20%)"}, updatedMinutesAgo: 30, priority: PriorityHigh,
	},
	{
		locationID: "loc_medical_center", locationName: "Medical Center",
		productID: "prod_gatorade_sports", productName: "Gatorade Sports",
		stock: 18, demand: 41, pickQty: 23, confidence: 0.96, stockoutCost: 187,
		aiFactors: []string{"Summer heat increasing dehydration cases (+18%)"}, updatedMinutesAgo: 15, priority: PriorityHigh,
	},
}

var syntheticReasons = []string{
	"Based on occupancy rate and historical trends",
	"Weekend demand surge and category popularity",
	"Seasonal adjustment with shrinkage factored in",
	"Critical stock level, preventing potential stockout",
	"High confidence forecast from 90-day accuracy",
}

// PickList builds the restocking plan for one location and date. Locations
// with curated demo rows emit them verbatim; AllLocations aggregates every
// curated row; everything else falls back to synthetic generation.
func (g *Generator) PickList(locationID, date string) (PickList, error) {
	var loc catalog.Location
	if locationID != AllLocations {
		var err error
		loc, err = g.cat.Location(locationID)
		if err != nil {
			return PickList{}, err
		}
	}

	rows := curatedRows(locationID)
	if len(rows) > 0 {
		return g.curatedPickList(locationID, date, rows), nil
	}
	return g.syntheticPickList(loc, date), nil
}

func curatedRows(locationID string) []demoPickRow {
	if locationID == AllLocations {
		return demoPickRows
	}
	var rows []demoPickRow
	for _, row := range demoPickRows {
		if row.locationID == locationID {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *Generator) curatedPickList(locationID, date string, rows []demoPickRow) PickList {
	items := make([]PickListItem, 0, len(rows))
	for idx, row := range rows {
		p50 := float64(row.demand)
		lastUpdated := g.now().Add(-time.Duration(row.updatedMinutesAgo) * time.Minute)

		items = append(items, PickListItem{
			ID:           fmt.Sprintf("pick_%s_%s_%s_%d", row.locationID, row.productID, date, idx),
			ProductID:    row.productID,
			ProductName:  row.productName,
			LocationID:   row.locationID,
			LocationName: row.locationName,
			CurrentStock: row.stock,
			Demand:       row.demand,
			Forecast: ForecastConfidence{
				P10: math.Max(1, math.Round(p50*0.7)),
				P50: p50,
				P90: math.Round(p50 * 1.2),
			},
			RecommendedQuantity: row.pickQty,
			Priority:            row.priority,
			ConfidenceScore:     row.confidence,
			StockoutCost:        row.stockoutCost,
			AIFactors:           row.aiFactors,
			Reason:              row.aiFactors[0],
			LastRestocked:       lastUpdated.Add(-24 * time.Hour),
			LastUpdated:         lastUpdated,
		})
	}

	locationName := "All Locations"
	if locationID != AllLocations {
		locationName = rows[0].locationName
	}
	return PickList{
		Date:                 date,
		LocationID:           locationID,
		LocationName:         locationName,
		Items:                items,
		TotalItems:           len(items),
		EstimatedTimeMinutes: len(items)*2 + 15,
		Status:               "pending",
	}
}

func (g *Generator) syntheticPickList(loc catalog.Location, date string) PickList {
	var productSample []catalog.Product
	switch loc.Type {
	case "hotel":
		productSample = sample(g, g.cat.Products(""), 15)
	case "office":
		// Offices stock beverages and snacks only.
		var pool []catalog.Product
		for _, p := range g.cat.Products("") {
			if p.Category == "Beverages" || p.Category == "Snacks" {
				pool = append(pool, p)
			}
		}
		productSample = sample(g, pool, 12)
	default:
		productSample = sample(g, g.cat.Products(""), 18)
	}

	items := make([]PickListItem, 0, len(productSample))
	for idx, product := range productSample {
		baseDemand := g.intBetween(3, 15)
		if loc.OccupancyRate > 0 {
			baseDemand = int(float64(baseDemand) * loc.OccupancyRate)
		}

		// p10/p90 offsets are drawn independently of each other.
		p10 := math.Max(1, float64(baseDemand-g.intBetween(2, 4)))
		p90 := float64(baseDemand + g.intBetween(2, 5))
		recommended := int(math.Round(float64(baseDemand) * 1.3)) // 30% safety bias
		currentStock := g.intBetween(0, 8)

		var priority string
		switch {
		case currentStock <= 2:
			priority = PriorityHigh
		case currentStock <= 5:
			priority = PriorityMedium
		default:
			priority = PriorityLow
		}

		lastUpdated := g.now().Add(-time.Duration(g.intBetween(5, 240)) * time.Minute)
		reason := pick(g, syntheticReasons)

		items = append(items, PickListItem{
			ID:           fmt.Sprintf("pick_%s_%s_%s_%d", loc.ID, product.ID, date, idx),
			ProductID:    product.ID,
			ProductName:  product.Name,
			LocationID:   loc.ID,
			LocationName: loc.Name,
			CurrentStock: currentStock,
			Demand:       baseDemand,
			Forecast: ForecastConfidence{
				P10: p10,
				P50: float64(baseDemand),
				P90: p90,
			},
			RecommendedQuantity: recommended,
			Priority:            priority,
			ConfidenceScore:     g.uniform(0.75, 0.95),
			StockoutCost:        round2(float64(recommended) * product.Price * 0.9),
			AIFactors:           []string{reason},
			Reason:              reason,
			LastRestocked:       g.now().Add(-time.Duration(g.intBetween(1, 5)) * 24 * time.Hour),
			LastUpdated:         lastUpdated,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i].Priority) < priorityRank(items[j].Priority)
	})

	return PickList{
		Date:                 date,
		LocationID:           loc.ID,
		LocationName:         loc.Name,
		Items:                items,
		TotalItems:           len(items),
		EstimatedTimeMinutes: len(items)*2 + 15,
		Status:               "pending",
	}
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
