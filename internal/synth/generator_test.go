package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
)

// testClock is a Monday in July: beverage seasonality is active and the
// snack weekly peak is not.
var testClock = time.Date(2025, time.July, 14, 10, 30, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	return New(
		catalog.New(),
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return testClock }),
	)
}
