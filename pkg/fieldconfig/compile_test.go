package fieldconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/testutil"
)

func TestCompileOverridesPreservesOrder(t *testing.T) {
	r := newTestResolver(t)

	rules := []models.OverrideRule{
		byNameOverride("a", models.DynamicConfigValue{Path: "unit", Value: "one"}),
		byNameOverride("b", models.DynamicConfigValue{Path: "unit", Value: "two"}),
		byNameOverride("c", models.DynamicConfigValue{Path: "unit", Value: "three"}),
	}

	compiled := r.compileOverrides(rules)

	require.Len(t, compiled, 3)
	assert.Equal(t, "one", compiled[0].properties[0].Value)
	assert.Equal(t, "two", compiled[1].properties[0].Value)
	assert.Equal(t, "three", compiled[2].properties[0].Value)
}

func TestCompileOverridesDropsUnknownMatcher(t *testing.T) {
	r := newTestResolver(t)

	rules := []models.OverrideRule{
		byNameOverride("a", models.DynamicConfigValue{Path: "unit", Value: "kept"}),
		{
			Matcher:    models.MatcherConfig{ID: "byDashboardVariable"},
			Properties: []models.DynamicConfigValue{{Path: "unit", Value: "dropped"}},
		},
		byNameOverride("c", models.DynamicConfigValue{Path: "unit", Value: "also kept"}),
	}

	compiled := r.compileOverrides(rules)

	require.Len(t, compiled, 2)
	assert.Equal(t, "kept", compiled[0].properties[0].Value)
	assert.Equal(t, "also kept", compiled[1].properties[0].Value)
}

func TestCompileOverridesDropsInvalidOptions(t *testing.T) {
	r := newTestResolver(t)

	rules := []models.OverrideRule{
		{
			Matcher:    models.MatcherConfig{ID: "byRegexp", Options: "([bad"},
			Properties: []models.DynamicConfigValue{{Path: "unit", Value: "x"}},
		},
	}

	compiled := r.compileOverrides(rules)

	assert.Empty(t, compiled)
}

func TestCompiledPredicateMatches(t *testing.T) {
	r := newTestResolver(t)

	compiled := r.compileOverrides([]models.OverrideRule{
		{
			Matcher:    models.MatcherConfig{ID: "byRegexp", Options: "^cpu_"},
			Properties: []models.DynamicConfigValue{{Path: "unit", Value: "percent"}},
		},
	})

	require.Len(t, compiled, 1)
	assert.True(t, compiled[0].matcher(testutil.NumberField("cpu_user", 1)))
	assert.False(t, compiled[0].matcher(testutil.NumberField("memory", 1)))
}
