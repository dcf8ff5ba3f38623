package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Factory builds an unconnected adapter. A nil logger means discard.
type Factory func(*slog.Logger) Adapter

// Adapter registry, keyed by lowercase target type.
var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// ErrAdapterRequired is returned when a target type is required but not provided.
var ErrAdapterRequired = errors.New("adapter type is required")

// UnknownAdapterError names a target type with no registered adapter.
type UnknownAdapterError struct {
	Name      string
	Available []string
}

func (e *UnknownAdapterError) Error() string {
	return fmt.Sprintf("unknown adapter %q\nAvailable adapters: %v\nHint: Check target.type in sqlrender.yaml", e.Name, e.Available)
}

// Register adds an adapter factory under name.
// Called by adapter implementations in their init() functions.
func Register(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[strings.ToLower(name)] = f
}

// Get returns the factory registered under name, ignoring case.
func Get(name string) (Factory, bool) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := factories[strings.ToLower(name)]
	return f, ok
}

// Lookup returns the factory for name, or an error naming the registered
// adapters when it is missing.
func Lookup(name string) (Factory, error) {
	if name == "" {
		return nil, ErrAdapterRequired
	}
	f, ok := Get(name)
	if !ok {
		return nil, &UnknownAdapterError{Name: name, Available: List()}
	}
	return f, nil
}

// List returns all registered adapter names (sorted).
func List() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAdapter builds the adapter for cfg.Type. The adapter is not connected.
func NewAdapter(cfg Config, logger *slog.Logger) (Adapter, error) {
	f, err := Lookup(cfg.Type)
	if err != nil {
		return nil, err
	}
	return f(logger), nil
}
