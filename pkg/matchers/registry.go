// Package matchers provides the field matcher registry. A matcher is a
// predicate over fields; override rules reference matchers by identifier
// and the registry turns the rule's options into a compiled predicate.
package matchers

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/errors"
	"github.com/ajitpratap0/prism/pkg/logger"
	"github.com/ajitpratap0/prism/pkg/models"
	stringpool "github.com/ajitpratap0/prism/pkg/strings"
)

// Matcher is a predicate selecting fields an override rule applies to
type Matcher func(field *models.Field) bool

// Builder constructs a Matcher from rule-specific options
type Builder func(options interface{}) (Matcher, error)

// Registry manages matcher builder registration and lookup
type Registry struct {
	builders map[string]Builder
	mu       sync.RWMutex
	logger   *zap.Logger
}

// Global registry instance, pre-populated with the builtin matchers
var globalRegistry = newBuiltinRegistry()

// NewRegistry creates an empty matcher registry
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
		logger:   logger.Get().With(zap.String("component", "matcher_registry")),
	}
}

// Register registers a matcher builder under the given identifier
func (r *Registry) Register(id string, builder Builder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[id]; exists {
		return errors.New(errors.ErrorTypeConflict, stringpool.Sprintf("matcher %s already registered", id))
	}

	r.builders[id] = builder
	r.logger.Debug("matcher registered", zap.String("id", id))
	return nil
}

// Lookup returns the builder for the given identifier, if registered
func (r *Registry) Lookup(id string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	builder, exists := r.builders[id]
	return builder, exists
}

// List returns the registered matcher identifiers, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Global registry functions

// Register registers a matcher builder in the global registry
func Register(id string, builder Builder) error {
	return globalRegistry.Register(id, builder)
}

// Lookup returns a builder from the global registry
func Lookup(id string) (Builder, bool) {
	return globalRegistry.Lookup(id)
}

// List returns matcher identifiers from the global registry
func List() []string {
	return globalRegistry.List()
}

// GetRegistry returns the global registry instance
func GetRegistry() *Registry {
	return globalRegistry
}
