package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
autoMinMax: true
theme: dark
fieldConfig:
  defaults:
    unit: percent
    decimals: 1
    min: 0
    max: 100
  overrides:
    - matcher:
        id: byName
        options: ${TARGET_FIELD}
      properties:
        - id: displayName
          value: CPU Usage
        - id: custom.lineWidth
          value: 2
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fieldconfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TARGET_FIELD", "cpu_user")

	doc, err := Load(writeDoc(t, sampleDoc))
	require.NoError(t, err)

	assert.True(t, doc.AutoMinMax)
	assert.Equal(t, "dark", doc.Theme)

	defaults := doc.FieldConfig.Defaults
	require.NotNil(t, defaults)
	assert.Equal(t, "percent", defaults.Unit)
	require.NotNil(t, defaults.Decimals)
	assert.Equal(t, 1, *defaults.Decimals)
	assert.Equal(t, 0.0, *defaults.Min)
	assert.Equal(t, 100.0, *defaults.Max)

	require.Len(t, doc.FieldConfig.Overrides, 1)
	rule := doc.FieldConfig.Overrides[0]
	assert.Equal(t, "byName", rule.Matcher.ID)
	assert.Equal(t, "cpu_user", rule.Matcher.Options)
	require.Len(t, rule.Properties, 2)
	assert.Equal(t, "displayName", rule.Properties[0].Path)
	assert.Equal(t, "CPU Usage", rule.Properties[0].Value)
	assert.Equal(t, "custom.lineWidth", rule.Properties[1].Path)
	assert.Equal(t, 2, rule.Properties[1].Value)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeDoc(t, "fieldConfig: ["))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyMatcherID(t *testing.T) {
	_, err := Load(writeDoc(t, `
fieldConfig:
  overrides:
    - matcher:
        options: cpu
      properties: []
`))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("TARGET_FIELD", "cpu_user")

	doc, err := Load(writeDoc(t, sampleDoc))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, Save(path, doc))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, reloaded)
}
