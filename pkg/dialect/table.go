package dialect

import (
	"cmp"
	"slices"
)

// Table maps closed symbols to their dialect text. A Table is filled during
// dialect construction and only read afterwards, so it carries no lock.
type Table[K cmp.Ordered, V any] struct {
	kind    ErrorKind
	entries map[K]V
}

// NewTable creates an empty table whose failed lookups report kind.
func NewTable[K cmp.Ordered, V any](kind ErrorKind) *Table[K, V] {
	return &Table[K, V]{kind: kind, entries: make(map[K]V)}
}

// Register stores value under key, replacing any previous value.
func (t *Table[K, V]) Register(key K, value V) {
	t.entries[key] = value
}

// AddMany registers every entry of m. Later calls replace earlier values
// for the same key.
func (t *Table[K, V]) AddMany(m map[K]V) {
	for k, v := range m {
		t.Register(k, v)
	}
}

// Remove deletes keys from the table.
func (t *Table[K, V]) Remove(keys ...K) {
	for _, k := range keys {
		delete(t.entries, k)
	}
}

// Has reports whether key is registered.
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.entries[key]
	return ok
}

// Lookup returns the value stored under key, or an *Error of the table's
// kind when the key is absent.
func (t *Table[K, V]) Lookup(key K) (V, error) {
	v, ok := t.entries[key]
	if !ok {
		var zero V
		return zero, &Error{Kind: t.kind, Symbol: symbolName(key)}
	}
	return v, nil
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

// Keys returns the registered keys in ascending order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func symbolName(key any) string {
	if s, ok := key.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}
