// Package schema declares the frontmatter shape of each content collection
// and validates entries against it.
package schema

import (
	"slices"

	"git.home.luguber.info/inful/folio/internal/foundation/normalization"
)

// FieldType is the declared type of a frontmatter field.
type FieldType int

const (
	String FieldType = iota + 1
	Date
	Bool
	URL
	StringList
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Date:
		return "date"
	case Bool:
		return "bool"
	case URL:
		return "url"
	case StringList:
		return "list of strings"
	default:
		return "unknown"
	}
}

var fieldTypes = normalization.NewEnum("field type", map[string]FieldType{
	"string":  String,
	"date":    Date,
	"bool":    Bool,
	"boolean": Bool,
	"url":     URL,
	"list":    StringList,
	"strings": StringList,
})

// ParseFieldType maps a configuration name ("string", "date", "bool",
// "url", "list") to a FieldType.
func ParseFieldType(name string) (FieldType, error) {
	return fieldTypes.Parse(name)
}

// Field declares one frontmatter key.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	// Default is applied when an optional field is absent. Nil means the
	// field is simply omitted from the record.
	Default any
}

// Required declares a field that must be present.
func Required(name string, t FieldType) Field {
	return Field{Name: name, Type: t}
}

// Optional declares a field that may be absent.
func Optional(name string, t FieldType) Field {
	return Field{Name: name, Type: t, Optional: true}
}

// WithDefault declares an optional field filled with def when absent.
func WithDefault(name string, t FieldType, def any) Field {
	return Field{Name: name, Type: t, Optional: true, Default: def}
}

// Schema is the ordered field list of one collection.
type Schema struct {
	Name   string
	Fields []Field
}

// Field returns the declaration for name.
func (s Schema) Field(name string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Record is a validated entry: declared fields converted to their Go types
// (dates as time.Time, lists as []string), undeclared keys carried as-is.
type Record map[string]any

// String returns the string value of key, or "".
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Strings returns the list value of key, or nil.
func (r Record) Strings(key string) []string {
	l, _ := r[key].([]string)
	return l
}

// Bool returns the bool value of key, or false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}
