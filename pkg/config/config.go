// Package config loads and saves declarative field configuration documents.
// A document carries the defaults and override rules fed into resolution,
// expressed in YAML with `${VAR}` environment substitution.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/prism/pkg/errors"
	"github.com/ajitpratap0/prism/pkg/fieldconfig"
)

// Document is a persisted field configuration: resolution inputs minus the
// data itself.
type Document struct {
	// FieldConfig holds defaults and overrides
	FieldConfig fieldconfig.FieldOptions `yaml:"fieldConfig" json:"fieldConfig"`

	// AutoMinMax requests automatic numeric bounds from the data extent
	AutoMinMax bool `yaml:"autoMinMax,omitempty" json:"autoMinMax,omitempty"`

	// Theme names the color theme used when building display processors
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Load loads a document from a YAML file
func Load(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: file path is controlled by the caller
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	var doc Document
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML")
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save saves a document to a YAML file
func Save(filePath string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write config file")
	}

	return nil
}

// Validate checks the document for structural problems that loading cannot
// express. Unknown matcher kinds and properties are deliberately not errors;
// resolution skips them.
func (d *Document) Validate() error {
	for i, rule := range d.FieldConfig.Overrides {
		if rule.Matcher.ID == "" {
			return errors.New(errors.ErrorTypeValidation, "override rule has no matcher id").
				WithDetail("rule", i)
		}
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
