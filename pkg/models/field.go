// Package models provides the data model for Prism: series, fields and
// their display configuration. A Series is an ordered collection of Fields
// sharing row alignment; each Field carries a value type tag, a configuration
// and its raw values. Resolution never mutates these inputs; it produces new
// Field records with a replaced configuration and an attached display
// processor.
package models

// FieldType tags the kind of values a field holds
type FieldType string

const (
	// FieldTypeNumber marks numeric fields
	FieldTypeNumber FieldType = "number"
	// FieldTypeString marks string fields
	FieldTypeString FieldType = "string"
	// FieldTypeBool marks boolean fields
	FieldTypeBool FieldType = "bool"
	// FieldTypeTime marks timestamp fields
	FieldTypeTime FieldType = "time"
	// FieldTypeOther marks fields of any other kind
	FieldTypeOther FieldType = "other"
)

// IsNumeric reports whether the type participates in numeric defaults,
// auto-ranging and range scanning.
func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber
}

// DisplayValue is the result of passing a raw value through a display processor.
type DisplayValue struct {
	// Text is the formatted representation, including any unit suffix
	Text string `json:"text"`
	// Numeric is the numeric interpretation of the value, if any
	Numeric float64 `json:"numeric"`
	// HasNumeric indicates whether Numeric is meaningful
	HasNumeric bool `json:"hasNumeric"`
	// Color is the resolved threshold color, if thresholds are configured
	Color string `json:"color,omitempty"`
}

// DisplayProcessor turns a raw field value into a presentable DisplayValue.
type DisplayProcessor func(value interface{}) DisplayValue

// Field is one column of a data series.
type Field struct {
	// Name identifies the field (e.g., column header)
	Name string `json:"name"`

	// Type tags the kind of values the field holds
	Type FieldType `json:"type"`

	// Labels carries arbitrary field metadata used by matchers
	Labels map[string]string `json:"labels,omitempty"`

	// Config is the field's display configuration
	Config *FieldConfig `json:"config,omitempty"`

	// Values holds the raw values, row-aligned with sibling fields
	Values []interface{} `json:"values"`

	// Display is attached by resolution; nil on input fields
	Display DisplayProcessor `json:"-"`
}

// Series is a named collection of fields sharing row alignment.
type Series struct {
	Name   string   `json:"name,omitempty"`
	Fields []*Field `json:"fields"`
}

// NumericRange is the global numeric extent across a set of series.
type NumericRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
