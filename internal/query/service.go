// Package query is the aggregation layer between the HTTP surface and the
// record generators. Each method mirrors one API operation: it validates
// identifiers, fans out over the catalog or a random sample, applies
// post-filters and sorts the result.
package query

import (
	"sort"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

// Sample sizes for the unfiltered overview endpoints.
const (
	accuracySampleSize   = 15
	inventorySampleSize  = 20
	accuracyPerLocation  = 10
	performanceSampleCap = 15
	trendSampleCap       = 20
)

// Top-performer limit bounds.
const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

// Service answers the API's read operations over a record generator.
type Service struct {
	gen *synth.Generator
}

// NewService wraps a generator.
func NewService(gen *synth.Generator) *Service {
	return &Service{gen: gen}
}

// Locations lists the catalog, optionally filtered by venue type.
func (s *Service) Locations(locationType string) []catalog.Location {
	return s.gen.Catalog().Locations(locationType)
}

// Location fetches one location by id.
func (s *Service) Location(id string) (catalog.Location, error) {
	return s.gen.Catalog().Location(id)
}

// Products lists the catalog, optionally filtered by category
// (case-insensitive).
func (s *Service) Products(category string) []catalog.Product {
	return s.gen.Catalog().Products(category)
}

// Product fetches one product by id.
func (s *Service) Product(id string) (catalog.Product, error) {
	return s.gen.Catalog().Product(id)
}

// PickList returns the restocking plan for a location. An empty date
// defaults to today.
func (s *Service) PickList(locationID, date string) (synth.PickList, error) {
	if date == "" {
		date = s.gen.Now().Format("2006-01-02")
	}
	return s.gen.PickList(locationID, date)
}

// AllPickLists returns one pick list per catalog location.
func (s *Service) AllPickLists(date string) ([]synth.PickList, error) {
	if date == "" {
		date = s.gen.Now().Format("2006-01-02")
	}
	locs := s.gen.Catalog().Locations("")
	lists := make([]synth.PickList, 0, len(locs))
	for _, loc := range locs {
		pl, err := s.gen.PickList(loc.ID, date)
		if err != nil {
			return nil, err
		}
		lists = append(lists, pl)
	}
	return lists, nil
}

// ModelAccuracy fans out over the requested product/location scope. With
// both filters it returns one record; with only a product it covers every
// location; with only a location it covers the first ten products; with
// neither it samples random pairs.
func (s *Service) ModelAccuracy(productID, locationID string) ([]synth.ModelAccuracy, error) {
	results := []synth.ModelAccuracy{}
	switch {
	case productID != "" && locationID != "":
		acc, err := s.gen.ModelAccuracy(productID, locationID)
		if err != nil {
			return nil, err
		}
		results = append(results, acc)
	case productID != "":
		for _, loc := range s.gen.Catalog().Locations("") {
			acc, err := s.gen.ModelAccuracy(productID, loc.ID)
			if err != nil {
				return nil, err
			}
			results = append(results, acc)
		}
	case locationID != "":
		products := s.gen.Catalog().Products("")
		if len(products) > accuracyPerLocation {
			products = products[:accuracyPerLocation]
		}
		for _, p := range products {
			acc, err := s.gen.ModelAccuracy(p.ID, locationID)
			if err != nil {
				return nil, err
			}
			results = append(results, acc)
		}
	default:
		for i := 0; i < accuracySampleSize; i++ {
			acc, err := s.gen.ModelAccuracy(s.gen.RandomProduct().ID, s.gen.RandomLocation().ID)
			if err != nil {
				return nil, err
			}
			results = append(results, acc)
		}
	}
	return results, nil
}

// InventoryStatus reports stock levels. With a location it covers every
// product there; otherwise it samples random product/location pairs. The
// status filter drops non-matching rows after generation.
func (s *Service) InventoryStatus(locationID, statusFilter string) ([]synth.InventoryStatus, error) {
	results := []synth.InventoryStatus{}
	if locationID != "" {
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return nil, err
		}
		for _, p := range s.gen.Catalog().Products("") {
			inv, err := s.gen.InventoryStatus(p.ID, locationID)
			if err != nil {
				return nil, err
			}
			if statusFilter == "" || inv.Status == statusFilter {
				results = append(results, inv)
			}
		}
		return results, nil
	}

	for i := 0; i < inventorySampleSize; i++ {
		inv, err := s.gen.InventoryStatus(s.gen.RandomProduct().ID, s.gen.RandomLocation().ID)
		if err != nil {
			return nil, err
		}
		if statusFilter == "" || inv.Status == statusFilter {
			results = append(results, inv)
		}
	}
	return results, nil
}

// DemandForecast forecasts one product, or every product when productID is
// empty. An empty forecastDate defaults to tomorrow.
func (s *Service) DemandForecast(locationID, productID, forecastDate string) ([]synth.DemandForecast, error) {
	if _, err := s.gen.Catalog().Location(locationID); err != nil {
		return nil, err
	}
	if forecastDate == "" {
		forecastDate = s.gen.Now().Add(24 * time.Hour).Format("2006-01-02")
	}

	results := []synth.DemandForecast{}
	if productID != "" {
		fc, err := s.gen.DemandForecast(productID, locationID, forecastDate)
		if err != nil {
			return nil, err
		}
		return append(results, fc), nil
	}
	for _, p := range s.gen.Catalog().Products("") {
		fc, err := s.gen.DemandForecast(p.ID, locationID, forecastDate)
		if err != nil {
			return nil, err
		}
		results = append(results, fc)
	}
	return results, nil
}

// AnalyticsSummary returns the cross-location overview.
func (s *Service) AnalyticsSummary() synth.AnalyticsSummary {
	return s.gen.AnalyticsSummary()
}

// ProductPerformance fans out over the requested scope, drops rows outside
// the tier filter, and sorts by score descending.
func (s *Service) ProductPerformance(locationID, productID, category, tier string) ([]synth.ProductPerformance, error) {
	results := []synth.ProductPerformance{}
	switch {
	case productID != "":
		if _, err := s.gen.Catalog().Product(productID); err != nil {
			return nil, err
		}
		if locationID != "" {
			perf, err := s.gen.ProductPerformance(productID, locationID)
			if err != nil {
				return nil, err
			}
			results = append(results, perf)
		} else {
			for _, loc := range s.gen.Catalog().Locations("") {
				perf, err := s.gen.ProductPerformance(productID, loc.ID)
				if err != nil {
					return nil, err
				}
				results = append(results, perf)
			}
		}
	case locationID != "":
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return nil, err
		}
		for _, p := range s.gen.Catalog().Products(category) {
			perf, err := s.gen.ProductPerformance(p.ID, locationID)
			if err != nil {
				return nil, err
			}
			if tier == "" || perf.PerformanceTier == tier {
				results = append(results, perf)
			}
		}
	default:
		products := s.gen.Catalog().Products(category)
		if len(products) > performanceSampleCap {
			products = products[:performanceSampleCap]
		}
		for _, p := range products {
			perf, err := s.gen.ProductPerformance(p.ID, s.gen.RandomLocation().ID)
			if err != nil {
				return nil, err
			}
			if tier == "" || perf.PerformanceTier == tier {
				results = append(results, perf)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PerformanceScore > results[j].PerformanceScore
	})
	return results, nil
}

// TopPerformers scores every product and returns the best few. A limit
// outside [1, MaxTopLimit] falls back to DefaultTopLimit.
func (s *Service) TopPerformers(locationID string, limit int) ([]synth.ProductPerformance, error) {
	if limit < 1 || limit > MaxTopLimit {
		limit = DefaultTopLimit
	}
	if locationID != "" {
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return nil, err
		}
	}

	results := []synth.ProductPerformance{}
	for _, p := range s.gen.Catalog().Products("") {
		locID := locationID
		if locID == "" {
			locID = s.gen.RandomLocation().ID
		}
		perf, err := s.gen.ProductPerformance(p.ID, locID)
		if err != nil {
			return nil, err
		}
		results = append(results, perf)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PerformanceScore > results[j].PerformanceScore
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Trends fans out like ProductPerformance, then applies the direction and
// anomaly filters and sorts by trend strength descending.
func (s *Service) Trends(locationID, productID, direction string, hasAnomaly *bool) ([]synth.TrendData, error) {
	results := []synth.TrendData{}
	switch {
	case productID != "":
		if _, err := s.gen.Catalog().Product(productID); err != nil {
			return nil, err
		}
		if locationID != "" {
			td, err := s.gen.TrendData(productID, locationID)
			if err != nil {
				return nil, err
			}
			results = append(results, td)
		} else {
			for _, loc := range s.gen.Catalog().Locations("") {
				td, err := s.gen.TrendData(productID, loc.ID)
				if err != nil {
					return nil, err
				}
				results = append(results, td)
			}
		}
	case locationID != "":
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return nil, err
		}
		for _, p := range s.gen.Catalog().Products("") {
			td, err := s.gen.TrendData(p.ID, locationID)
			if err != nil {
				return nil, err
			}
			results = append(results, td)
		}
	default:
		products := s.gen.Catalog().Products("")
		if len(products) > trendSampleCap {
			products = products[:trendSampleCap]
		}
		for _, p := range products {
			td, err := s.gen.TrendData(p.ID, s.gen.RandomLocation().ID)
			if err != nil {
				return nil, err
			}
			results = append(results, td)
		}
	}

	filtered := results[:0]
	for _, td := range results {
		if direction != "" && td.TrendDirection != direction {
			continue
		}
		if hasAnomaly != nil && td.HasAnomaly != *hasAnomaly {
			continue
		}
		filtered = append(filtered, td)
	}
	results = filtered

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TrendStrength > results[j].TrendStrength
	})
	return results, nil
}

// Anomalies scans every product (at the given location, or a random one
// each) and keeps only anomalous rows, most severe first.
func (s *Service) Anomalies(locationID, severity string) ([]synth.TrendData, error) {
	if locationID != "" {
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return nil, err
		}
	}

	results := []synth.TrendData{}
	for _, p := range s.gen.Catalog().Products("") {
		locID := locationID
		if locID == "" {
			locID = s.gen.RandomLocation().ID
		}
		td, err := s.gen.TrendData(p.ID, locID)
		if err != nil {
			return nil, err
		}
		if !td.HasAnomaly {
			continue
		}
		if severity != "" && td.AnomalySeverity != severity {
			continue
		}
		results = append(results, td)
	}

	rank := map[string]int{"high": 0, "medium": 1, "low": 2}
	sort.SliceStable(results, func(i, j int) bool {
		ri, ok := rank[results[i].AnomalySeverity]
		if !ok {
			ri = 3
		}
		rj, ok := rank[results[j].AnomalySeverity]
		if !ok {
			rj = 3
		}
		return ri < rj
	})
	return results, nil
}

// Alerts returns the filtered alert catalog. A non-empty locationID must
// exist.
func (s *Service) Alerts(locationID, alertType, severity string) (synth.AlertsSummary, error) {
	if locationID != "" {
		if _, err := s.gen.Catalog().Location(locationID); err != nil {
			return synth.AlertsSummary{}, err
		}
	}
	return s.gen.Alerts(locationID, alertType, severity), nil
}

// CriticalAlerts is the critical-only view of Alerts.
func (s *Service) CriticalAlerts(locationID string) (synth.AlertsSummary, error) {
	return s.Alerts(locationID, "", synth.SeverityCritical)
}

// StockoutRisks is the stockout-risk-only view of Alerts.
func (s *Service) StockoutRisks(locationID string) (synth.AlertsSummary, error) {
	return s.Alerts(locationID, synth.AlertStockoutRisk, "")
}
