package enum

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/zero-day-ai/typedenum/strcase"
)

// Registry holds enumeration type definitions and their populated constant
// tables, keyed by type identity. Tables are built lazily on first access and
// kept until Reset. Two types never share a table, even when their declared
// constants coincide.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]Enumeration
	tables map[string]any

	keyCase *strcase.Cache
	logger  *slog.Logger
	metrics *registryMetrics
}

// defaultRegistry is used by types defined without WithRegistry.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the package-level registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	cfg := registryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newRegistryMetrics(cfg.meterProvider)
	if err != nil {
		logger.Warn("enum registry metrics disabled", "error", err)
		metrics = noopRegistryMetrics()
	}

	return &Registry{
		types:   make(map[string]Enumeration),
		tables:  make(map[string]any),
		keyCase: strcase.NewCache(),
		logger:  logger,
		metrics: metrics,
	}
}

// Types returns the identities of every defined type, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the type defined under id.
func (r *Registry) Lookup(id string) (Enumeration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.types[id]
	return e, ok
}

// Populated reports whether the constant table for id has been built.
func (r *Registry) Populated(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tables[id]
	return ok
}

// Reset drops every populated table and the key-case cache. Type definitions
// are kept; their tables are rebuilt on next access. This is primarily useful
// for testing.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables = make(map[string]any)
	r.keyCase.Reset()
}

func (r *Registry) define(e Enumeration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[e.ID()]; exists {
		return fmt.Errorf("type %s already defined", e.ID())
	}
	r.types[e.ID()] = e
	return nil
}

// tableFor returns the populated table for t, building it from t's source on
// first use. Concurrent first uses may both build the table; the first one
// stored wins and the others are discarded.
func tableFor[V Scalar](r *Registry, t *Type[V]) (*table[V], error) {
	r.mu.RLock()
	cached, ok := r.tables[t.id]
	r.mu.RUnlock()
	if ok {
		return cached.(*table[V]), nil
	}

	declared, err := t.source.Constants()
	if err != nil {
		r.logger.Warn("enum declaration could not be loaded", "type", t.id, "error", err)
		return nil, err
	}

	built, err := buildTable(declared)
	if err != nil {
		r.logger.Warn("enum declaration rejected", "type", t.id, "error", err)
		return nil, err
	}

	r.mu.Lock()
	if cached, ok := r.tables[t.id]; ok {
		r.mu.Unlock()
		return cached.(*table[V]), nil
	}
	r.tables[t.id] = built
	r.mu.Unlock()

	r.metrics.populated(t.id)
	r.logger.Debug("enum constants populated", "type", t.id, "constants", len(built.constants))

	return built, nil
}
