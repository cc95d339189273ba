package fieldconfig

import (
	"math"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/reducers"
)

// scanRange computes the global numeric extent across every numeric field of
// every series. The accumulators start at the representable extremes, not
// zero: a field whose only values are negative must still pull the minimum
// below zero. When no numeric field exists the sentinel extremes are
// returned as-is; callers must treat that as "no data".
func (r *Resolver) scanRange(data []*models.Series) models.NumericRange {
	rng := models.NumericRange{
		Min: math.MaxFloat64,
		Max: -math.MaxFloat64,
	}

	for _, series := range data {
		for _, field := range series.Fields {
			if !field.Type.IsNumeric() {
				continue
			}

			stats := r.reduce(field, []reducers.StatID{reducers.StatMin, reducers.StatMax})
			if v, ok := stats[reducers.StatMin]; ok && v < rng.Min {
				rng.Min = v
			}
			if v, ok := stats[reducers.StatMax]; ok && v > rng.Max {
				rng.Max = v
			}
		}
	}

	return rng
}
