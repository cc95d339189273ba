package models

import (
	"math"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldConfigClone(t *testing.T) {
	min := 1.0
	decimals := 2
	original := &FieldConfig{
		DisplayName: "Temperature",
		Unit:        "°C",
		Decimals:    &decimals,
		Min:         &min,
		Thresholds: &ThresholdsConfig{
			Mode:  ThresholdsModeAbsolute,
			Steps: []Threshold{{Value: math.Inf(-1), Color: "green"}, {Value: 80, Color: "red"}},
		},
		Custom: map[string]interface{}{
			"lineWidth": 2,
			"axis":      map[string]interface{}{"placement": "left"},
		},
	}

	clone := original.Clone()

	*clone.Min = 99
	*clone.Decimals = 0
	clone.Thresholds.Steps[1].Color = "orange"
	clone.Custom["lineWidth"] = 5
	clone.Custom["axis"].(map[string]interface{})["placement"] = "right"

	assert.Equal(t, 1.0, *original.Min)
	assert.Equal(t, 2, *original.Decimals)
	assert.Equal(t, "red", original.Thresholds.Steps[1].Color)
	assert.Equal(t, 2, original.Custom["lineWidth"])
	assert.Equal(t, "left", original.Custom["axis"].(map[string]interface{})["placement"])
}

func TestFieldConfigCloneNil(t *testing.T) {
	var c *FieldConfig
	clone := c.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Min)
	assert.Nil(t, clone.Thresholds)
}

func TestThresholdJSONRoundTrip(t *testing.T) {
	steps := []Threshold{
		{Value: math.Inf(-1), Color: "green"},
		{Value: 42.5, Color: "red"},
	}

	data, err := gojson.Marshal(steps)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"value":null,"color":"green"},{"value":42.5,"color":"red"}]`, string(data))

	var decoded []Threshold
	require.NoError(t, gojson.Unmarshal(data, &decoded))
	assert.True(t, math.IsInf(decoded[0].Value, -1))
	assert.Equal(t, 42.5, decoded[1].Value)
}

func TestFieldTypeIsNumeric(t *testing.T) {
	assert.True(t, FieldTypeNumber.IsNumeric())
	assert.False(t, FieldTypeString.IsNumeric())
	assert.False(t, FieldTypeTime.IsNumeric())
}
