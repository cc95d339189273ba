// Package fieldconfig resolves per-field display configuration for tabular
// data series. Global defaults and an ordered list of conditional override
// rules are merged property by property onto each field's configuration,
// missing numeric bounds are filled from the global data extent on request,
// and every resolved field gets a display processor attached.
//
// Resolution is a pure, synchronous transformation: input series and fields
// are never mutated; malformed user configuration degrades to a no-op
// instead of failing.
package fieldconfig

import (
	"math"

	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/display"
	"github.com/ajitpratap0/prism/pkg/logger"
	"github.com/ajitpratap0/prism/pkg/matchers"
	"github.com/ajitpratap0/prism/pkg/metrics"
	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/processors"
	"github.com/ajitpratap0/prism/pkg/reducers"
	stringpool "github.com/ajitpratap0/prism/pkg/strings"
)

// MatcherLookup resolves matcher identifiers to builders
type MatcherLookup interface {
	Lookup(id string) (matchers.Builder, bool)
}

// ProcessorLookup resolves property paths to value processors
type ProcessorLookup interface {
	Lookup(path string) (processors.ProcessFunc, bool)
}

// ReduceFunc computes field statistics
type ReduceFunc func(field *models.Field, ids []reducers.StatID) map[reducers.StatID]float64

// DisplayBuilder constructs a display processor for a resolved configuration
type DisplayBuilder func(opts display.Options) models.DisplayProcessor

// Deps are the resolver's collaborators. Nil fields default to the standard
// implementations.
type Deps struct {
	Matchers     MatcherLookup
	Processors   ProcessorLookup
	Reduce       ReduceFunc
	BuildDisplay DisplayBuilder
	Logger       *zap.Logger
}

// Resolver computes effective field configurations
type Resolver struct {
	matchers     MatcherLookup
	processors   ProcessorLookup
	reduce       ReduceFunc
	buildDisplay DisplayBuilder
	logger       *zap.Logger
}

// NewResolver creates a resolver, defaulting any missing collaborator
func NewResolver(deps Deps) *Resolver {
	if deps.Matchers == nil {
		deps.Matchers = matchers.GetRegistry()
	}
	if deps.Processors == nil {
		deps.Processors = processors.GetRegistry()
	}
	if deps.Reduce == nil {
		deps.Reduce = reducers.Reduce
	}
	if deps.BuildDisplay == nil {
		deps.BuildDisplay = display.Build
	}
	if deps.Logger == nil {
		deps.Logger = logger.Get().With(zap.String("component", "field_config_resolver"))
	}
	return &Resolver{
		matchers:     deps.Matchers,
		processors:   deps.Processors,
		reduce:       deps.Reduce,
		buildDisplay: deps.BuildDisplay,
		logger:       deps.Logger,
	}
}

// FieldOptions are the declarative field configuration inputs: defaults
// applied to every numeric field, then override rules in declaration order.
type FieldOptions struct {
	Defaults  *models.FieldConfig   `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Overrides []models.OverrideRule `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// ResolveOptions parameterize one resolution call
type ResolveOptions struct {
	// Data is the input series list
	Data []*models.Series

	// FieldOptions holds defaults and overrides; nil means pass-through
	FieldOptions *FieldOptions

	// AutoMinMax fills missing numeric bounds from the global data extent
	AutoMinMax bool

	// Theme parameterizes display processors; nil uses the default theme
	Theme *display.Theme

	// ReplaceVariables interpolates variables in string property values
	ReplaceVariables func(string) string
}

// Resolve computes the effective configuration for every field of every
// series and returns a new series list. Inputs are never mutated. With no
// data it returns an empty list; with no field options it returns the input
// unchanged.
func (r *Resolver) Resolve(opts ResolveOptions) []*models.Series {
	timer := metrics.NewTimer()
	defer timer.ObserveResolution()

	if len(opts.Data) == 0 {
		metrics.ResolutionsTotal.WithLabelValues("empty").Inc()
		return []*models.Series{}
	}
	if opts.FieldOptions == nil {
		metrics.ResolutionsTotal.WithLabelValues("passthrough").Inc()
		return opts.Data
	}

	compiled := r.compileOverrides(opts.FieldOptions.Overrides)
	ctx := processors.Context{ReplaceVariables: opts.ReplaceVariables}

	// The global range is shared by every field that needs auto-ranging
	// within this call, computed on first use only.
	var cachedRange *models.NumericRange
	globalRange := func() models.NumericRange {
		if cachedRange == nil {
			rng := r.scanRange(opts.Data)
			cachedRange = &rng
		}
		return *cachedRange
	}

	out := make([]*models.Series, 0, len(opts.Data))
	for i, series := range opts.Data {
		name := series.Name
		if name == "" {
			name = stringpool.Sprintf("Series[%d]", i)
		}

		fields := make([]*models.Field, 0, len(series.Fields))
		for _, field := range series.Fields {
			fields = append(fields, r.resolveField(field, opts, compiled, ctx, globalRange))
			metrics.FieldsResolved.Inc()
		}

		out = append(out, &models.Series{Name: name, Fields: fields})
	}

	metrics.ResolutionsTotal.WithLabelValues("resolved").Inc()
	return out
}

func (r *Resolver) resolveField(
	field *models.Field,
	opts ResolveOptions,
	compiled []compiledOverride,
	ctx processors.Context,
	globalRange func() models.NumericRange,
) *models.Field {
	config := field.Config.Clone()

	if field.Type.IsNumeric() && opts.FieldOptions.Defaults != nil {
		r.mergeDefaults(config, opts.FieldOptions.Defaults, ctx)
	}

	for _, rule := range compiled {
		if !rule.matcher(field) {
			continue
		}
		metrics.RulesMatched.Inc()
		for _, prop := range rule.properties {
			r.applyConfigValue(config, prop.Path, prop.Value, ctx)
		}
	}

	if opts.AutoMinMax && field.Type.IsNumeric() &&
		(!validNumber(config.Min) || !validNumber(config.Max)) {
		rng := globalRange()
		if !validNumber(config.Min) {
			v := rng.Min
			config.Min = &v
		}
		if !validNumber(config.Max) {
			v := rng.Max
			config.Max = &v
		}
	}

	validateConfig(config)

	resolved := *field
	resolved.Config = config
	resolved.Display = r.buildDisplay(display.Options{
		Type:   field.Type,
		Config: config,
		Theme:  opts.Theme,
	})
	return &resolved
}

func validNumber(p *float64) bool {
	return p != nil && !math.IsNaN(*p)
}
