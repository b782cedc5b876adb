package sets

import (
	"slices"
	"strings"
)

// Set is a small generic hash set.
// Usage: s := sets.New("node_modules", ".git"); if s.Has(name) {...}
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with vals.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present. A nil set holds nothing.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Fold builds a string set with every value lower-cased, for
// case-insensitive lookups such as file extensions.
func Fold(vals ...string) Set[string] {
	s := make(Set[string], len(vals))
	for _, v := range vals {
		s[strings.ToLower(v)] = struct{}{}
	}
	return s
}

// Sorted returns the members of a string set in lexical order.
func Sorted(s Set[string]) []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
