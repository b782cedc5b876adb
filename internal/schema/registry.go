package schema

import (
	"errors"
	"fmt"
	"slices"
)

// Registry maps collection names to schemas.
type Registry struct {
	schemas map[string]Schema
}

// NewRegistry registers schemas. Names must be non-empty and unique.
func NewRegistry(schemas ...Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]Schema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry holding projects, publications and art.
func Builtin() *Registry {
	r, err := NewRegistry(Projects(), Publications(), Art())
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds s. Duplicate field names inside s are rejected as well.
func (r *Registry) Register(s Schema) error {
	if s.Name == "" {
		return errors.New("schema has no name")
	}
	if _, dup := r.schemas[s.Name]; dup {
		return fmt.Errorf("collection %q registered twice", s.Name)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("collection %q: field with empty name", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("collection %q: field %q declared twice", s.Name, f.Name)
		}
		seen[f.Name] = true
		if !f.Optional && f.Default != nil {
			return fmt.Errorf("collection %q: required field %q cannot have a default", s.Name, f.Name)
		}
	}
	r.schemas[s.Name] = s
	return nil
}

// Lookup returns the schema registered for collection.
func (r *Registry) Lookup(collection string) (Schema, bool) {
	s, ok := r.schemas[collection]
	return s, ok
}

// Names returns the registered collection names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Only returns a registry restricted to names. Unknown names are an error.
func (r *Registry) Only(names ...string) (*Registry, error) {
	out := &Registry{schemas: make(map[string]Schema, len(names))}
	for _, name := range names {
		s, ok := r.schemas[name]
		if !ok {
			return nil, fmt.Errorf("unknown collection %q", name)
		}
		out.schemas[name] = s
	}
	return out, nil
}
