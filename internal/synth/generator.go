// Package synth generates plausible analytics records for the mock API.
// There is no forecasting engine behind it: every number is drawn from a
// category- or location-dependent range, then classified into discrete tiers.
// The random source and clock are injected so tests can pin both.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
)

// Generator produces analytics records over the catalog universe. Safe for
// concurrent use: the shared rand source is guarded by a mutex, and nothing
// else mutates.
type Generator struct {
	cat *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option adjusts a Generator at construction time.
type Option func(*Generator)

// WithRand pins the random source. Tests use a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithClock pins the wall clock used for timestamps and seasonality.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New builds a generator over the given catalog. By default the random
// source is wall-clock seeded and timestamps come from time.Now.
func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		cat: cat,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog exposes the underlying universe for the aggregation layer.
func (g *Generator) Catalog() *catalog.Catalog { return g.cat }

// Now reports the generator's clock, so callers derive default dates from
// the same source the records are stamped with.
func (g *Generator) Now() time.Time { return g.now() }

// RandomLocation returns a uniformly chosen location.
func (g *Generator) RandomLocation() catalog.Location {
	return pick(g, g.cat.Locations(""))
}

// RandomProduct returns a uniformly chosen product.
func (g *Generator) RandomProduct() catalog.Product {
	return pick(g, g.cat.Products(""))
}

// uniform draws from U(lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Intn(hi-lo+1)
}

// float64n draws from [0, 1).
func (g *Generator) float64n() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// pick returns a uniformly chosen element.
func pick[T any](g *Generator, items []T) T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return items[g.rng.Intn(len(items))]
}

// sample returns up to n elements drawn without replacement.
func sample[T any](g *Generator, items []T, n int) []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n > len(items) {
		n = len(items)
	}
	idx := g.rng.Perm(len(items))[:n]
	out := make([]T, n)
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
