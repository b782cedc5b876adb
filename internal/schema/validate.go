package schema

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"time"

	"golang.org/x/net/idna"
)

// Validate checks entry against the schema and returns the converted record.
//
// Every declared field is checked in order and all failures are collected
// into a single *ValidationError. Absent optional fields receive their
// default when one is declared. Keys the schema does not declare are copied
// through unchanged. entry itself is never modified.
func (s Schema) Validate(entry map[string]any) (Record, error) {
	rec := make(Record, len(entry))
	maps.Copy(rec, entry)

	var errs []FieldError
	for _, f := range s.Fields {
		raw, present := entry[f.Name]
		if !present {
			switch {
			case !f.Optional:
				errs = append(errs, FieldError{Field: f.Name, Expected: f.Type.String(), Reason: reasonRequired})
			case f.Default != nil:
				rec[f.Name] = cloneDefault(f.Default)
			}
			continue
		}
		v, fe := convert(f, raw)
		if fe != nil {
			errs = append(errs, *fe)
			delete(rec, f.Name)
			continue
		}
		rec[f.Name] = v
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Collection: s.Name, Errors: errs}
	}
	return rec, nil
}

func convert(f Field, raw any) (any, *FieldError) {
	fail := func(reason string) *FieldError {
		return &FieldError{Field: f.Name, Expected: f.Type.String(), Got: raw, Reason: reason}
	}

	switch f.Type {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, fail("wrong type")
		}
		return s, nil

	case Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fail("wrong type")
		}
		return b, nil

	case Date:
		switch v := raw.(type) {
		case time.Time:
			return v, nil
		case string:
			if t, err := parseDate(v); err == nil {
				return t, nil
			}
			return nil, fail("not a YYYY-MM-DD or RFC 3339 date")
		default:
			return nil, fail("wrong type")
		}

	case URL:
		s, ok := raw.(string)
		if !ok {
			return nil, fail("wrong type")
		}
		if reason := checkURL(s); reason != "" {
			return nil, fail(reason)
		}
		return s, nil

	case StringList:
		switch v := raw.(type) {
		case []string:
			return slices.Clone(v), nil
		case []any:
			out := make([]string, len(v))
			for i, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fail(fmt.Sprintf("element %d is %s", i, describe(item)))
				}
				out[i] = s
			}
			return out, nil
		default:
			return nil, fail("wrong type")
		}
	}
	return nil, fail("undeclared field type")
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// checkURL returns a failure reason, or "" for an absolute URL with a
// scheme and a valid (IDNA) host.
func checkURL(s string) string {
	u, err := url.Parse(s)
	if err != nil {
		return "unparseable url"
	}
	if u.Scheme == "" || !u.IsAbs() {
		return "url is not absolute"
	}
	// Opaque forms such as mailto: and tel: have no authority to check.
	if u.Opaque != "" {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return "url has no host"
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return "invalid host: " + err.Error()
	}
	return ""
}

func cloneDefault(v any) any {
	switch vv := v.(type) {
	case []string:
		return slices.Clone(vv)
	case []any:
		return slices.Clone(vv)
	default:
		return v
	}
}
