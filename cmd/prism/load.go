package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ajitpratap0/prism/pkg/errors"
	jsonpool "github.com/ajitpratap0/prism/pkg/json"
	"github.com/ajitpratap0/prism/pkg/models"
)

// loadSeries reads tabular data from a CSV or JSON file. A CSV file becomes
// one series whose name is the file stem; a JSON file holds a full series
// list.
func loadSeries(path string) ([]*models.Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, errors.New(errors.ErrorTypeValidation, "unsupported data format").
			WithDetail("path", path)
	}
}

func loadJSON(path string) ([]*models.Series, error) {
	f, err := os.Open(path) //nolint:gosec // G304: file path is controlled by the caller
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open data file")
	}
	defer f.Close()

	var data []*models.Series
	if err := jsonpool.Decode(f, &data); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode series JSON")
	}
	return data, nil
}

func loadCSV(path string) ([]*models.Series, error) {
	f, err := os.Open(path) //nolint:gosec // G304: file path is controlled by the caller
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open data file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to parse CSV")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "CSV file has no header row")
	}

	header := rows[0]
	columns := make([][]interface{}, len(header))
	numeric := make([]bool, len(header))
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range rows[1:] {
		for i := range header {
			if i >= len(row) || row[i] == "" {
				columns[i] = append(columns[i], nil)
				continue
			}
			if n, err := strconv.ParseFloat(row[i], 64); err == nil {
				columns[i] = append(columns[i], n)
			} else {
				numeric[i] = false
				columns[i] = append(columns[i], row[i])
			}
		}
	}

	fields := make([]*models.Field, len(header))
	for i, name := range header {
		fieldType := models.FieldTypeString
		if numeric[i] {
			fieldType = models.FieldTypeNumber
		}
		fields[i] = &models.Field{
			Name:   name,
			Type:   fieldType,
			Values: columns[i],
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []*models.Series{{Name: name, Fields: fields}}, nil
}
