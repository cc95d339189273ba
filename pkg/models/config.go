package models

import (
	"math"

	gojson "github.com/goccy/go-json"
)

// ThresholdsMode determines how threshold step values are interpreted
type ThresholdsMode string

const (
	// ThresholdsModeAbsolute interprets step values as absolute numbers
	ThresholdsModeAbsolute ThresholdsMode = "absolute"
	// ThresholdsModePercentage interprets step values as a percentage of min/max
	ThresholdsModePercentage ThresholdsMode = "percentage"
)

// Threshold is a single threshold step. After resolution the first step of a
// non-empty list always has Value == -Inf so the baseline step matches every
// number.
type Threshold struct {
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

// MarshalJSON encodes the -Inf baseline step as null, which plain JSON
// cannot represent otherwise.
func (t Threshold) MarshalJSON() ([]byte, error) {
	type alias struct {
		Value *float64 `json:"value"`
		Color string   `json:"color"`
	}
	a := alias{Color: t.Color}
	if !math.IsInf(t.Value, -1) {
		v := t.Value
		a.Value = &v
	}
	return gojson.Marshal(a)
}

// UnmarshalJSON decodes a null step value back to -Inf.
func (t *Threshold) UnmarshalJSON(data []byte) error {
	type alias struct {
		Value *float64 `json:"value"`
		Color string   `json:"color"`
	}
	var a alias
	if err := gojson.Unmarshal(data, &a); err != nil {
		return err
	}
	t.Color = a.Color
	if a.Value == nil {
		t.Value = math.Inf(-1)
	} else {
		t.Value = *a.Value
	}
	return nil
}

// ThresholdsConfig holds an ordered list of threshold steps.
type ThresholdsConfig struct {
	Mode  ThresholdsMode `yaml:"mode" json:"mode"`
	Steps []Threshold    `yaml:"steps" json:"steps"`
}

// FieldConfig is a field's display configuration. All properties are
// optional; nil pointers mean "not set".
type FieldConfig struct {
	// DisplayName overrides the field name for presentation
	DisplayName string `yaml:"displayName,omitempty" json:"displayName,omitempty"`

	// Unit is appended verbatim to formatted values
	Unit string `yaml:"unit,omitempty" json:"unit,omitempty"`

	// Decimals fixes the number of decimal places when formatting
	Decimals *int `yaml:"decimals,omitempty" json:"decimals,omitempty"`

	// Min and Max bound the field's expected numeric range
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`

	// NoValue is displayed in place of missing values
	NoValue string `yaml:"noValue,omitempty" json:"noValue,omitempty"`

	// Thresholds colorize values by range
	Thresholds *ThresholdsConfig `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`

	// Custom is an open-ended bag for renderer-specific options
	Custom map[string]interface{} `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// Clone returns a copy of the configuration that shares no mutable state
// with the receiver. Resolution mutates only such clones, never an input
// field's own configuration.
func (c *FieldConfig) Clone() *FieldConfig {
	if c == nil {
		return &FieldConfig{}
	}

	clone := *c
	if c.Decimals != nil {
		v := *c.Decimals
		clone.Decimals = &v
	}
	if c.Min != nil {
		v := *c.Min
		clone.Min = &v
	}
	if c.Max != nil {
		v := *c.Max
		clone.Max = &v
	}
	if c.Thresholds != nil {
		steps := make([]Threshold, len(c.Thresholds.Steps))
		copy(steps, c.Thresholds.Steps)
		clone.Thresholds = &ThresholdsConfig{Mode: c.Thresholds.Mode, Steps: steps}
	}
	if c.Custom != nil {
		clone.Custom = cloneAnyMap(c.Custom)
	}
	return &clone
}

func cloneAnyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = cloneAnyMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
