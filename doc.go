// Package prism resolves per-field display configuration for tabular data
// series: global defaults plus an ordered list of conditional override rules
// are merged, validated and coerced property by property, and every resolved
// field is paired with a display processor that formats its raw values.
//
// # Architecture
//
// Resolution is built from small, injectable collaborators:
//
// 1. Matcher registry (pkg/matchers): turns a rule's matcher specification
// into a predicate over fields. Unknown matcher kinds are forward-compatible
// no-ops, never errors.
//
// 2. Property processor registry (pkg/processors): validates and coerces one
// raw override value per configuration property, including dotted paths into
// the open-ended custom bag.
//
// 3. Reducers (pkg/reducers): single-pass field statistics; resolution uses
// min/max to derive missing numeric bounds from the global data extent.
//
// 4. Display (pkg/display): builds the value-formatting processor attached
// to every resolved field, parameterized by configuration and theme.
//
// The orchestrator lives in pkg/fieldconfig. It never mutates input series:
// each field's configuration is cloned, merged and validated, and a new
// series list is returned.
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/prism/pkg/fieldconfig"
//	    "github.com/ajitpratap0/prism/pkg/models"
//	)
//
//	resolver := fieldconfig.NewResolver(fieldconfig.Deps{})
//	resolved := resolver.Resolve(fieldconfig.ResolveOptions{
//	    Data: data,
//	    FieldOptions: &fieldconfig.FieldOptions{
//	        Defaults: &models.FieldConfig{Unit: "percent"},
//	        Overrides: []models.OverrideRule{{
//	            Matcher:    models.MatcherConfig{ID: "byName", Options: "cpu"},
//	            Properties: []models.DynamicConfigValue{{Path: "decimals", Value: 1}},
//	        }},
//	    },
//	    AutoMinMax: true,
//	})
//
// Malformed user configuration never fails resolution: unknown matchers,
// unknown properties and rejected values all degrade to no-ops.
package prism
