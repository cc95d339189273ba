package matchers

import (
	"regexp"

	"github.com/ajitpratap0/prism/pkg/errors"
	"github.com/ajitpratap0/prism/pkg/models"
	stringpool "github.com/ajitpratap0/prism/pkg/strings"
)

// Builtin matcher identifiers
const (
	MatcherByName   = "byName"
	MatcherByNames  = "byNames"
	MatcherByRegexp = "byRegexp"
	MatcherByType   = "byType"
)

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	// Registration of builtins cannot collide on an empty registry.
	_ = r.Register(MatcherByName, byNameBuilder)
	_ = r.Register(MatcherByNames, byNamesBuilder)
	_ = r.Register(MatcherByRegexp, byRegexpBuilder)
	_ = r.Register(MatcherByType, byTypeBuilder)
	return r
}

// byNameBuilder matches a single field by exact name
func byNameBuilder(options interface{}) (Matcher, error) {
	name, ok := options.(string)
	if !ok {
		return nil, errors.New(errors.ErrorTypeValidation, "byName matcher requires a string option")
	}
	return func(field *models.Field) bool {
		return field.Name == name
	}, nil
}

// byNamesBuilder matches any field whose name is in the given set
func byNamesBuilder(options interface{}) (Matcher, error) {
	names, err := toStringSlice(options)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(field *models.Field) bool {
		_, found := set[field.Name]
		return found
	}, nil
}

// byRegexpBuilder matches fields whose name matches the given pattern
func byRegexpBuilder(options interface{}) (Matcher, error) {
	pattern, ok := options.(string)
	if !ok {
		return nil, errors.New(errors.ErrorTypeValidation, "byRegexp matcher requires a string option")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, stringpool.Sprintf("invalid matcher pattern %q", pattern))
	}
	return func(field *models.Field) bool {
		return re.MatchString(field.Name)
	}, nil
}

// byTypeBuilder matches fields by their value type tag
func byTypeBuilder(options interface{}) (Matcher, error) {
	raw, ok := options.(string)
	if !ok {
		return nil, errors.New(errors.ErrorTypeValidation, "byType matcher requires a string option")
	}
	fieldType := models.FieldType(raw)
	return func(field *models.Field) bool {
		return field.Type == fieldType
	}, nil
}

func toStringSlice(options interface{}) ([]string, error) {
	switch v := options.(type) {
	case []string:
		return v, nil
	case []interface{}:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New(errors.ErrorTypeValidation, "byNames matcher requires string entries")
			}
			names = append(names, s)
		}
		return names, nil
	default:
		return nil, errors.New(errors.ErrorTypeValidation, "byNames matcher requires a list of names")
	}
}
