package processors

import (
	"math"
	"sort"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/reducers"
)

func newStandardRegistry() *Registry {
	r := NewRegistry()
	// Registration of the standard set cannot collide on an empty registry.
	_ = r.Register("min", numberProcessor)
	_ = r.Register("max", numberProcessor)
	_ = r.Register("decimals", decimalsProcessor)
	_ = r.Register("displayName", stringProcessor)
	_ = r.Register("unit", stringProcessor)
	_ = r.Register("noValue", stringProcessor)
	_ = r.Register("thresholds", thresholdsProcessor)
	return r
}

// numberProcessor coerces numeric representations to float64
func numberProcessor(raw, _ interface{}, _ Context) (interface{}, bool) {
	n, ok := reducers.ToFloat(raw)
	if !ok || math.IsNaN(n) {
		return nil, false
	}
	return n, true
}

// decimalsProcessor coerces to a non-negative integer
func decimalsProcessor(raw, _ interface{}, _ Context) (interface{}, bool) {
	n, ok := reducers.ToFloat(raw)
	if !ok || math.IsNaN(n) || n < 0 {
		return nil, false
	}
	return int(n), true
}

// stringProcessor accepts strings and applies variable interpolation
func stringProcessor(raw, _ interface{}, ctx Context) (interface{}, bool) {
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return ctx.interpolate(s), true
}

// customProcessor passes values through untouched, interpolating strings.
// It backs every path under the custom prefix.
func customProcessor(raw, _ interface{}, ctx Context) (interface{}, bool) {
	if raw == nil {
		return nil, false
	}
	if s, ok := raw.(string); ok {
		return ctx.interpolate(s), true
	}
	return raw, true
}

// thresholdsProcessor normalizes a raw threshold specification into a
// ThresholdsConfig with steps sorted by value. Rejects specs with no steps.
func thresholdsProcessor(raw, _ interface{}, _ Context) (interface{}, bool) {
	cfg, ok := normalizeThresholds(raw)
	if !ok || len(cfg.Steps) == 0 {
		return nil, false
	}

	sort.SliceStable(cfg.Steps, func(i, j int) bool {
		return cfg.Steps[i].Value < cfg.Steps[j].Value
	})
	return cfg, true
}

func normalizeThresholds(raw interface{}) (*models.ThresholdsConfig, bool) {
	switch v := raw.(type) {
	case *models.ThresholdsConfig:
		if v == nil {
			return nil, false
		}
		steps := make([]models.Threshold, len(v.Steps))
		copy(steps, v.Steps)
		return &models.ThresholdsConfig{Mode: v.Mode, Steps: steps}, true
	case models.ThresholdsConfig:
		steps := make([]models.Threshold, len(v.Steps))
		copy(steps, v.Steps)
		return &models.ThresholdsConfig{Mode: v.Mode, Steps: steps}, true
	case map[string]interface{}:
		cfg := &models.ThresholdsConfig{Mode: models.ThresholdsModeAbsolute}
		if mode, ok := v["mode"].(string); ok {
			cfg.Mode = models.ThresholdsMode(mode)
		}
		rawSteps, ok := v["steps"].([]interface{})
		if !ok {
			return nil, false
		}
		steps, ok := normalizeSteps(rawSteps)
		if !ok {
			return nil, false
		}
		cfg.Steps = steps
		return cfg, true
	case []interface{}:
		steps, ok := normalizeSteps(v)
		if !ok {
			return nil, false
		}
		return &models.ThresholdsConfig{Mode: models.ThresholdsModeAbsolute, Steps: steps}, true
	default:
		return nil, false
	}
}

func normalizeSteps(raw []interface{}) ([]models.Threshold, bool) {
	steps := make([]models.Threshold, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}

		step := models.Threshold{Value: math.Inf(-1)}
		if rawValue, present := m["value"]; present && rawValue != nil {
			n, ok := reducers.ToFloat(rawValue)
			if !ok {
				return nil, false
			}
			step.Value = n
		}
		if color, ok := m["color"].(string); ok {
			step.Color = color
		}
		steps = append(steps, step)
	}
	return steps, true
}
