// Package catalog holds the static location and product universe every
// generator draws from. Both tables are defined once at process start and
// read-only afterward, so concurrent lookups need no locking.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a location or product id is not in the catalog.
var ErrNotFound = errors.New("not found")

// Location is a micromarket site stocked via periodic pick lists.
type Location struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // hotel, office, airport, hospital, retail
	Address       string  `json:"address"`
	Contact       string  `json:"contact,omitempty"`
	Capacity      int     `json:"capacity,omitempty"`
	OccupancyRate float64 `json:"occupancy_rate,omitempty"`
}

// Product is a single stocked item.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Supplier string  `json:"supplier,omitempty"`
}

// Catalog indexes the static tables for id lookup.
type Catalog struct {
	locations []Location
	products  []Product
	locByID   map[string]Location
	prodByID  map[string]Product
}

// New builds a catalog over the default tables.
func New() *Catalog {
	return NewWith(defaultLocations, defaultProducts)
}

// NewWith builds a catalog over explicit tables. Used by tests that need a
// smaller universe.
func NewWith(locations []Location, products []Product) *Catalog {
	c := &Catalog{
		locations: locations,
		products:  products,
		locByID:   make(map[string]Location, len(locations)),
		prodByID:  make(map[string]Product, len(products)),
	}
	for _, loc := range locations {
		c.locByID[loc.ID] = loc
	}
	for _, p := range products {
		c.prodByID[p.ID] = p
	}
	return c
}

// Locations returns all locations, optionally filtered by type.
func (c *Catalog) Locations(locationType string) []Location {
	if locationType == "" {
		out := make([]Location, len(c.locations))
		copy(out, c.locations)
		return out
	}
	out := []Location{} // non-nil so an unmatched filter serializes as []
	for _, loc := range c.locations {
		if loc.Type == locationType {
			out = append(out, loc)
		}
	}
	return out
}

// Location looks up a location by id.
func (c *Catalog) Location(id string) (Location, error) {
	loc, ok := c.locByID[id]
	if !ok {
		return Location{}, fmt.Errorf("location %s: %w", id, ErrNotFound)
	}
	return loc, nil
}

// Products returns all products, optionally filtered by category
// (case-insensitive, matching the API's query semantics).
func (c *Catalog) Products(category string) []Product {
	if category == "" {
		out := make([]Product, len(c.products))
		copy(out, c.products)
		return out
	}
	out := []Product{}
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (Product, error) {
	p, ok := c.prodByID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// LocationCount reports the size of the location table.
func (c *Catalog) LocationCount() int { return len(c.locations) }

// ProductCount reports the size of the product table.
func (c *Catalog) ProductCount() int { return len(c.products) }
