// Package types provides the logical column type registry used when
// formatting schema columns.
package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/sqlrender/pkg/core"
)

// ErrUnknownType is returned when a type name has no registered DataType.
var ErrUnknownType = errors.New("unknown column type")

// Type is a simple DataType backed by a token and a set of default options.
type Type struct {
	Token    string
	Defaults core.ColumnOptions
}

// SQLToken returns the canonical SQL token.
func (t Type) SQLToken() string { return t.Token }

// DefaultOptions returns the type's default column options.
func (t Type) DefaultOptions() core.ColumnOptions { return t.Defaults }

// Registry maps type names (case-insensitive) to data types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]core.DataType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]core.DataType)}
}

// Register adds or replaces a type under name.
func (r *Registry) Register(name string, dt core.DataType) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[strings.ToLower(name)] = dt
	return r
}

// Alias registers alias as another name for an already registered type.
func (r *Registry) Alias(alias, name string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dt, ok := r.types[strings.ToLower(name)]; ok {
		r.types[strings.ToLower(alias)] = dt
	}
	return r
}

// Resolve returns the type registered under name.
func (r *Registry) Resolve(name string) (core.DataType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dt, ok := r.types[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return dt, nil
}

// Names returns all registered type names (sorted).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
