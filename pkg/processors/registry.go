// Package processors provides the configuration property processor registry.
// A processor validates and coerces one raw override value for a named
// configuration property; a property path with no registered processor is
// unknown and callers treat it as a silent no-op.
package processors

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/prism/pkg/errors"
	"github.com/ajitpratap0/prism/pkg/logger"
	stringpool "github.com/ajitpratap0/prism/pkg/strings"
)

// CustomPrefix addresses properties in the open-ended custom bag
const CustomPrefix = "custom."

// Context carries interpolation state into processors
type Context struct {
	// ReplaceVariables substitutes variables in string values; nil means
	// no interpolation
	ReplaceVariables func(string) string
}

func (c Context) interpolate(s string) string {
	if c.ReplaceVariables == nil {
		return s
	}
	return c.ReplaceVariables(s)
}

// ProcessFunc validates and coerces a raw property value. The existing value
// is the property's current value on the working configuration. A false
// second return rejects the raw value; the property is then left unchanged.
type ProcessFunc func(raw, existing interface{}, ctx Context) (interface{}, bool)

// Registry manages property processor registration and lookup
type Registry struct {
	processors map[string]ProcessFunc
	mu         sync.RWMutex
	logger     *zap.Logger
}

// Global registry instance, pre-populated with the standard processors
var globalRegistry = newStandardRegistry()

// NewRegistry creates an empty processor registry
func NewRegistry() *Registry {
	return &Registry{
		processors: make(map[string]ProcessFunc),
		logger:     logger.Get().With(zap.String("component", "processor_registry")),
	}
}

// Register registers a processor for the given property path
func (r *Registry) Register(path string, fn ProcessFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processors[path]; exists {
		return errors.New(errors.ErrorTypeConflict, stringpool.Sprintf("processor for %s already registered", path))
	}

	r.processors[path] = fn
	r.logger.Debug("property processor registered", zap.String("path", path))
	return nil
}

// Lookup returns the processor for a property path. Paths under the custom
// prefix share a single pass-through processor.
func (r *Registry) Lookup(path string) (ProcessFunc, bool) {
	if strings.HasPrefix(path, CustomPrefix) {
		return customProcessor, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, exists := r.processors[path]
	return fn, exists
}

// List returns the registered property paths, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.processors))
	for path := range r.processors {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Global registry functions

// Register registers a processor in the global registry
func Register(path string, fn ProcessFunc) error {
	return globalRegistry.Register(path, fn)
}

// Lookup returns a processor from the global registry
func Lookup(path string) (ProcessFunc, bool) {
	return globalRegistry.Lookup(path)
}

// List returns property paths from the global registry
func List() []string {
	return globalRegistry.List()
}

// GetRegistry returns the global registry instance
func GetRegistry() *Registry {
	return globalRegistry
}
