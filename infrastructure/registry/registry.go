// Package registry holds the JSON schemas of spec document kinds.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/reglet-dev/arrange/application/schema"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/reglet-dev/arrange/domain/ports"
)

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates).
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry implements SchemaRegistry.
type Registry struct {
	config  registryConfig
	schemas sync.Map // map[string]string (json schema)
}

// NewRegistry creates a new, empty Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// NewDefaultRegistry returns a registry holding the sort_specs and
// equal_options document schemas.
func NewDefaultRegistry() ports.SchemaRegistry {
	r := NewRegistry()
	if err := r.Register(entities.DocumentKindSortSpecs, entities.SortSpecDocument{}); err != nil {
		panic(err)
	}
	if err := r.Register(entities.DocumentKindEqualOptions, entities.EqualOptions{}); err != nil {
		panic(err)
	}
	return r
}

// Register adds a schema generated from a Go struct.
func (r *Registry) Register(kind string, model interface{}) error {
	if r.config.strictMode {
		if _, exists := r.schemas.Load(kind); exists {
			return fmt.Errorf("document kind %q already registered", kind)
		}
	}

	data, err := json.Marshal(schema.Reflect(model))
	if err != nil {
		return &domerrors.SchemaError{Type: kind, Err: err}
	}
	r.schemas.Store(kind, string(data))
	return nil
}

// GetSchema retrieves the JSON Schema for a document kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	v, ok := r.schemas.Load(kind)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// List returns all registered document kinds, sorted.
func (r *Registry) List() []string {
	var keys []string
	r.schemas.Range(func(k, v interface{}) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}
