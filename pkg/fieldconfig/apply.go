package fieldconfig

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/processors"
)

// applyConfigValue applies one named property update to the working
// configuration. Unknown properties and rejected values are silent no-ops:
// configuration is user-authored and must never fail resolution.
func (r *Resolver) applyConfigValue(config *models.FieldConfig, path string, raw interface{}, ctx processors.Context) {
	fn, found := r.processors.Lookup(path)
	if !found {
		r.logger.Debug("unknown configuration property ignored", zap.String("path", path))
		return
	}

	coerced, ok := fn(raw, getProperty(config, path), ctx)
	if !ok {
		return
	}

	setProperty(config, path, coerced)
}

// mergeDefaults applies a defaults configuration onto a numeric field's
// working configuration through the same processor path as overrides, then
// enforces the structural invariants.
func (r *Resolver) mergeDefaults(config *models.FieldConfig, defaults *models.FieldConfig, ctx processors.Context) {
	if defaults.DisplayName != "" {
		r.applyConfigValue(config, "displayName", defaults.DisplayName, ctx)
	}
	if defaults.Unit != "" {
		r.applyConfigValue(config, "unit", defaults.Unit, ctx)
	}
	if defaults.Decimals != nil {
		r.applyConfigValue(config, "decimals", *defaults.Decimals, ctx)
	}
	if defaults.Min != nil {
		r.applyConfigValue(config, "min", *defaults.Min, ctx)
	}
	if defaults.Max != nil {
		r.applyConfigValue(config, "max", *defaults.Max, ctx)
	}
	if defaults.NoValue != "" {
		r.applyConfigValue(config, "noValue", defaults.NoValue, ctx)
	}
	if defaults.Thresholds != nil {
		r.applyConfigValue(config, "thresholds", defaults.Thresholds, ctx)
	}
	if len(defaults.Custom) > 0 {
		// Merging the custom bag from defaults is not handled yet.
		r.logger.Info("custom defaults are not yet supported, skipping",
			zap.Int("keys", len(defaults.Custom)))
	}

	validateConfig(config)
}

// validateConfig enforces the structural invariants on a resolved
// configuration: the first threshold step always sits at -Inf so the
// baseline matches every number, and min/max are swapped when inverted.
func validateConfig(config *models.FieldConfig) {
	if config.Thresholds != nil && len(config.Thresholds.Steps) > 0 {
		config.Thresholds.Steps[0].Value = math.Inf(-1)
	}

	if config.Min != nil && config.Max != nil && *config.Min > *config.Max {
		config.Min, config.Max = config.Max, config.Min
	}
}

// getProperty reads a property's current value off the configuration.
func getProperty(config *models.FieldConfig, path string) interface{} {
	switch path {
	case "displayName":
		return config.DisplayName
	case "unit":
		return config.Unit
	case "noValue":
		return config.NoValue
	case "decimals":
		if config.Decimals == nil {
			return nil
		}
		return *config.Decimals
	case "min":
		if config.Min == nil {
			return nil
		}
		return *config.Min
	case "max":
		if config.Max == nil {
			return nil
		}
		return *config.Max
	case "thresholds":
		return config.Thresholds
	}

	if rest, ok := strings.CutPrefix(path, processors.CustomPrefix); ok {
		return customGet(config.Custom, strings.Split(rest, "."))
	}
	return nil
}

// setProperty writes a coerced value at the property path. Dotted custom
// paths are written atomically, creating intermediate maps as needed; a
// coerced value of an unexpected type is dropped rather than propagated.
func setProperty(config *models.FieldConfig, path string, value interface{}) {
	switch path {
	case "displayName":
		if s, ok := value.(string); ok {
			config.DisplayName = s
		}
		return
	case "unit":
		if s, ok := value.(string); ok {
			config.Unit = s
		}
		return
	case "noValue":
		if s, ok := value.(string); ok {
			config.NoValue = s
		}
		return
	case "decimals":
		if n, ok := value.(int); ok {
			config.Decimals = &n
		}
		return
	case "min":
		if n, ok := value.(float64); ok {
			config.Min = &n
		}
		return
	case "max":
		if n, ok := value.(float64); ok {
			config.Max = &n
		}
		return
	case "thresholds":
		if t, ok := value.(*models.ThresholdsConfig); ok {
			config.Thresholds = t
		}
		return
	}

	if rest, ok := strings.CutPrefix(path, processors.CustomPrefix); ok {
		if config.Custom == nil {
			config.Custom = make(map[string]interface{})
		}
		customSet(config.Custom, strings.Split(rest, "."), value)
	}
}

func customGet(m map[string]interface{}, segments []string) interface{} {
	if m == nil || len(segments) == 0 {
		return nil
	}
	for _, segment := range segments[:len(segments)-1] {
		next, ok := m[segment].(map[string]interface{})
		if !ok {
			return nil
		}
		m = next
	}
	return m[segments[len(segments)-1]]
}

func customSet(m map[string]interface{}, segments []string, value interface{}) {
	for _, segment := range segments[:len(segments)-1] {
		next, ok := m[segment].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[segment] = next
		}
		m = next
	}
	m[segments[len(segments)-1]] = value
}
