// Package normalization maps loosely written configuration strings onto
// typed enum values.
package normalization

import (
	"fmt"
	"slices"
	"strings"
)

// Enum resolves user-supplied names (case and surrounding space ignored)
// to values of T. Several names may map to the same value.
type Enum[T comparable] struct {
	name   string
	values map[string]T
	keys   []string
}

// NewEnum builds an Enum. name appears in error messages ("field type").
func NewEnum[T comparable](name string, values map[string]T) *Enum[T] {
	e := &Enum[T]{name: name, values: make(map[string]T, len(values))}
	for k, v := range values {
		key := normalize(k)
		e.values[key] = v
		e.keys = append(e.keys, key)
	}
	slices.Sort(e.keys)
	return e
}

// Parse returns the value for raw or an error listing the accepted names.
func (e *Enum[T]) Parse(raw string) (T, error) {
	if v, ok := e.values[normalize(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %s", e.name, raw, strings.Join(e.keys, ", "))
}

// Keys returns the accepted names, sorted.
func (e *Enum[T]) Keys() []string {
	return slices.Clone(e.keys)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
