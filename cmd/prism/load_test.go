package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/prism/pkg/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "metrics.csv", "host,usage\nweb-1,12.5\nweb-2,\nweb-3,99\n")

	data, err := loadSeries(path)
	require.NoError(t, err)
	require.Len(t, data, 1)

	series := data[0]
	assert.Equal(t, "metrics", series.Name)
	require.Len(t, series.Fields, 2)

	host := series.Fields[0]
	assert.Equal(t, models.FieldTypeString, host.Type)
	assert.Equal(t, []interface{}{"web-1", "web-2", "web-3"}, host.Values)

	usage := series.Fields[1]
	assert.Equal(t, models.FieldTypeNumber, usage.Type)
	assert.Equal(t, []interface{}{12.5, nil, 99.0}, usage.Values)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "series.json",
		`[{"name":"cpu","fields":[{"name":"usage","type":"number","values":[1,2,3]}]}]`)

	data, err := loadSeries(path)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "cpu", data[0].Name)
	require.Len(t, data[0].Fields, 1)
	assert.Equal(t, models.FieldTypeNumber, data[0].Fields[0].Type)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "data.parquet", "")
	_, err := loadSeries(path)
	assert.Error(t, err)
}

func TestLoadEmptyCSV(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := loadSeries(path)
	assert.Error(t, err)
}
