package fieldconfig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/processors"
)

func TestApplyConfigValueCoercion(t *testing.T) {
	r := newTestResolver(t)
	config := &models.FieldConfig{}

	r.applyConfigValue(config, "min", "2.5", processors.Context{})
	r.applyConfigValue(config, "decimals", 2.0, processors.Context{})

	require.NotNil(t, config.Min)
	assert.Equal(t, 2.5, *config.Min)
	require.NotNil(t, config.Decimals)
	assert.Equal(t, 2, *config.Decimals)
}

func TestApplyConfigValueUnknownPath(t *testing.T) {
	r := newTestResolver(t)
	config := &models.FieldConfig{Unit: "ms"}

	r.applyConfigValue(config, "mappings", []interface{}{"x"}, processors.Context{})

	assert.Equal(t, &models.FieldConfig{Unit: "ms"}, config)
}

func TestApplyConfigValueNestedCustom(t *testing.T) {
	r := newTestResolver(t)
	config := &models.FieldConfig{}

	r.applyConfigValue(config, "custom.axis.grid.show", true, processors.Context{})

	axis := config.Custom["axis"].(map[string]interface{})
	grid := axis["grid"].(map[string]interface{})
	assert.Equal(t, true, grid["show"])
}

func TestMergeDefaultsSkipsCustom(t *testing.T) {
	r := newTestResolver(t)
	config := &models.FieldConfig{}
	defaults := &models.FieldConfig{
		Unit:   "short",
		Custom: map[string]interface{}{"lineWidth": 2},
	}

	r.mergeDefaults(config, defaults, processors.Context{})

	assert.Equal(t, "short", config.Unit)
	// custom defaults are a known unsupported gap
	assert.Nil(t, config.Custom)
}

func TestMergeDefaultsDoesNotClobber(t *testing.T) {
	r := newTestResolver(t)
	decimals := 0
	config := &models.FieldConfig{}
	defaults := &models.FieldConfig{Decimals: &decimals}

	r.mergeDefaults(config, defaults, processors.Context{})

	require.NotNil(t, config.Decimals)
	assert.Equal(t, 0, *config.Decimals)
	assert.NotSame(t, defaults.Decimals, config.Decimals)
}

func TestValidateConfigThresholdFloor(t *testing.T) {
	config := &models.FieldConfig{
		Thresholds: &models.ThresholdsConfig{
			Mode:  models.ThresholdsModeAbsolute,
			Steps: []models.Threshold{{Value: 10, Color: "green"}, {Value: 80, Color: "red"}},
		},
	}

	validateConfig(config)

	assert.True(t, math.IsInf(config.Thresholds.Steps[0].Value, -1))
	assert.Equal(t, 80.0, config.Thresholds.Steps[1].Value)
}

func TestValidateConfigSwapsInvertedBounds(t *testing.T) {
	min, max := 10.0, 2.0
	config := &models.FieldConfig{Min: &min, Max: &max}

	validateConfig(config)

	assert.Equal(t, 2.0, *config.Min)
	assert.Equal(t, 10.0, *config.Max)
}

func TestValidateConfigLeavesOrderedBounds(t *testing.T) {
	min, max := 1.0, 9.0
	config := &models.FieldConfig{Min: &min, Max: &max}

	validateConfig(config)

	assert.Equal(t, 1.0, *config.Min)
	assert.Equal(t, 9.0, *config.Max)
}

func TestGetPropertyCustomPath(t *testing.T) {
	config := &models.FieldConfig{
		Custom: map[string]interface{}{
			"axis": map[string]interface{}{"placement": "left"},
		},
	}

	assert.Equal(t, "left", getProperty(config, "custom.axis.placement"))
	assert.Nil(t, getProperty(config, "custom.axis.missing"))
	assert.Nil(t, getProperty(config, "custom.nothere.deep"))
}
