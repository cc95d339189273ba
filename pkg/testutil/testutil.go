// Package testutil provides testing utilities for Prism
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/prism/pkg/models"
)

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// NumberField builds a numeric field from literal values
func NumberField(name string, values ...float64) *models.Field {
	raw := make([]interface{}, len(values))
	for i, v := range values {
		raw[i] = v
	}
	return &models.Field{
		Name:   name,
		Type:   models.FieldTypeNumber,
		Values: raw,
	}
}

// StringField builds a string field from literal values
func StringField(name string, values ...string) *models.Field {
	raw := make([]interface{}, len(values))
	for i, v := range values {
		raw[i] = v
	}
	return &models.Field{
		Name:   name,
		Type:   models.FieldTypeString,
		Values: raw,
	}
}

// Series builds a series from fields
func Series(name string, fields ...*models.Field) *models.Series {
	return &models.Series{Name: name, Fields: fields}
}
