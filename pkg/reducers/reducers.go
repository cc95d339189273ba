// Package reducers computes field statistics over raw series values.
// All requested stats are accumulated in a single pass; values that cannot
// be interpreted as numbers are skipped rather than rejected.
package reducers

import (
	"strconv"

	"github.com/ajitpratap0/prism/pkg/models"
)

// StatID names a reduction
type StatID string

const (
	// StatMin is the smallest value
	StatMin StatID = "min"
	// StatMax is the largest value
	StatMax StatID = "max"
	// StatSum is the sum of all values
	StatSum StatID = "sum"
	// StatCount is the number of numeric values
	StatCount StatID = "count"
	// StatMean is the arithmetic mean
	StatMean StatID = "mean"
	// StatFirst is the first numeric value
	StatFirst StatID = "first"
	// StatLast is the last numeric value
	StatLast StatID = "last"
	// StatRange is max - min
	StatRange StatID = "range"
)

// List returns the supported stat identifiers
func List() []StatID {
	return []StatID{StatMin, StatMax, StatSum, StatCount, StatMean, StatFirst, StatLast, StatRange}
}

// Reduce computes the requested stats over a field's values. The returned
// map holds an entry per requested stat; data-dependent stats (everything
// except count) are absent when the field has no numeric values.
func Reduce(field *models.Field, ids []StatID) map[StatID]float64 {
	var (
		count       float64
		sum         float64
		min, max    float64
		first, last float64
	)

	for _, raw := range field.Values {
		n, ok := ToFloat(raw)
		if !ok {
			continue
		}
		if count == 0 {
			min, max, first = n, n, n
		} else {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		last = n
		sum += n
		count++
	}

	result := make(map[StatID]float64, len(ids))
	for _, id := range ids {
		if id == StatCount {
			result[StatCount] = count
			continue
		}
		if count == 0 {
			continue
		}
		switch id {
		case StatMin:
			result[StatMin] = min
		case StatMax:
			result[StatMax] = max
		case StatSum:
			result[StatSum] = sum
		case StatMean:
			result[StatMean] = sum / count
		case StatFirst:
			result[StatFirst] = first
		case StatLast:
			result[StatLast] = last
		case StatRange:
			result[StatRange] = max - min
		}
	}
	return result
}

// ToFloat interprets a raw value as a float64. Strings are parsed; anything
// else non-numeric reports false.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
