package models

// MatcherConfig selects which fields an override rule applies to. ID names a
// matcher builder in the matcher registry; Options is builder-specific.
type MatcherConfig struct {
	ID      string      `yaml:"id" json:"id"`
	Options interface{} `yaml:"options,omitempty" json:"options,omitempty"`
}

// DynamicConfigValue is a single property patch within an override rule.
// Path addresses a configuration property, with dotted paths reaching into
// the custom bag (e.g. "custom.lineWidth").
type DynamicConfigValue struct {
	Path  string      `yaml:"id" json:"id"`
	Value interface{} `yaml:"value" json:"value"`
}

// OverrideRule pairs a matcher with an ordered list of property patches.
// Rule order is significant: later rules win over earlier ones when both
// touch the same property of the same field.
type OverrideRule struct {
	Matcher    MatcherConfig        `yaml:"matcher" json:"matcher"`
	Properties []DynamicConfigValue `yaml:"properties" json:"properties"`
}
