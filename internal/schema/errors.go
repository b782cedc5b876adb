package schema

import (
	"fmt"
	"strings"
)

// FieldError describes one offending field.
type FieldError struct {
	Field    string
	Expected string
	// Got is the offending value; nil for a missing field.
	Got    any
	Reason string
}

func (e FieldError) Error() string {
	if e.Reason == reasonRequired {
		return fmt.Sprintf("%s: required %s is missing", e.Field, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s (%s)", e.Field, e.Expected, describe(e.Got), e.Reason)
}

const reasonRequired = "required"

// ValidationError lists every field of an entry that failed validation,
// in schema order.
type ValidationError struct {
	// Entry identifies the document (slug or path); empty when validating
	// a bare map.
	Entry      string
	Collection string
	Errors     []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Collection)
	if e.Entry != "" {
		b.WriteString("/")
		b.WriteString(e.Entry)
	}
	fmt.Fprintf(&b, ": %d invalid field", len(e.Errors))
	if len(e.Errors) != 1 {
		b.WriteString("s")
	}
	for i, fe := range e.Errors {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Fields returns the names of the offending fields.
func (e *ValidationError) Fields() []string {
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return names
}

func describe(v any) string {
	switch vv := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", vv)
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}
