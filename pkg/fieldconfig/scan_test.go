package fieldconfig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/testutil"
)

func TestScanRange(t *testing.T) {
	r := newTestResolver(t)

	data := []*models.Series{
		testutil.Series("a", testutil.NumberField("x", 1, 5, 3)),
		testutil.Series("b",
			testutil.NumberField("y", -2, 8),
			testutil.StringField("labels", "up", "down"),
		),
	}

	rng := r.scanRange(data)

	assert.Equal(t, -2.0, rng.Min)
	assert.Equal(t, 8.0, rng.Max)
}

func TestScanRangeNegativeOnly(t *testing.T) {
	r := newTestResolver(t)

	data := []*models.Series{
		testutil.Series("a", testutil.NumberField("x", -10, -4)),
	}

	rng := r.scanRange(data)

	// a negative-only field must pull the minimum below zero
	assert.Equal(t, -10.0, rng.Min)
	assert.Equal(t, -4.0, rng.Max)
}

func TestScanRangeNoNumericFields(t *testing.T) {
	r := newTestResolver(t)

	data := []*models.Series{
		testutil.Series("a", testutil.StringField("host", "web-1")),
	}

	rng := r.scanRange(data)

	// sentinel extremes mean "no data"
	assert.Equal(t, math.MaxFloat64, rng.Min)
	assert.Equal(t, -math.MaxFloat64, rng.Max)
}

func TestScanRangeSkipsUnparsableValues(t *testing.T) {
	r := newTestResolver(t)

	field := &models.Field{
		Name:   "mixed",
		Type:   models.FieldTypeNumber,
		Values: []interface{}{2.0, nil, "oops", 6.0},
	}
	rng := r.scanRange([]*models.Series{testutil.Series("a", field)})

	assert.Equal(t, 2.0, rng.Min)
	assert.Equal(t, 6.0, rng.Max)
}
