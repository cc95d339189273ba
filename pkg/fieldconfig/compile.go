package fieldconfig

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/matchers"
	"github.com/ajitpratap0/prism/pkg/metrics"
	"github.com/ajitpratap0/prism/pkg/models"
)

// compiledOverride pairs a built predicate with its rule's patches, in the
// rule's original order.
type compiledOverride struct {
	matcher    matchers.Matcher
	properties []models.DynamicConfigValue
}

// compileOverrides turns declarative override rules into compiled predicates.
// Rules naming an unregistered matcher kind are dropped without error; they
// are treated as forward-compatible no-ops. Rule order is preserved.
func (r *Resolver) compileOverrides(rules []models.OverrideRule) []compiledOverride {
	compiled := make([]compiledOverride, 0, len(rules))

	for _, rule := range rules {
		builder, found := r.matchers.Lookup(rule.Matcher.ID)
		if !found {
			r.logger.Debug("unknown matcher kind, override rule skipped",
				zap.String("matcher", rule.Matcher.ID))
			metrics.RulesDropped.WithLabelValues("unknown_matcher").Inc()
			continue
		}

		matcher, err := builder(rule.Matcher.Options)
		if err != nil {
			r.logger.Warn("invalid matcher options, override rule skipped",
				zap.String("matcher", rule.Matcher.ID),
				zap.Error(err))
			metrics.RulesDropped.WithLabelValues("invalid_options").Inc()
			continue
		}

		compiled = append(compiled, compiledOverride{
			matcher:    matcher,
			properties: rule.Properties,
		})
	}

	return compiled
}
