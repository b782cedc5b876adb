package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_AppliesDefaults(t *testing.T) {
	rec, err := Projects().Validate(map[string]any{
		"title":       "X",
		"description": "Y",
	})
	require.NoError(t, err)

	assert.Equal(t, Record{
		"title":       "X",
		"description": "Y",
		"tags":        []string{},
		"page":        false,
		"external":    false,
		"featured":    false,
	}, rec)
	_, hasDate := rec["date"]
	assert.False(t, hasDate)
}

func TestProjects_InvalidURL(t *testing.T) {
	_, err := Projects().Validate(map[string]any{
		"title":       "X",
		"description": "Y",
		"link":        "not a url",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"link"}, verr.Fields())
	assert.Equal(t, "not a url", verr.Errors[0].Got)
}

func TestProjects_MissingRequiredTitle(t *testing.T) {
	_, err := Projects().Validate(map[string]any{"description": "Y"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"title"}, verr.Fields())
	assert.Equal(t, "required", verr.Errors[0].Reason)
	assert.Equal(t, CollectionProjects, verr.Collection)
}

func TestPublications_AuthorsNotAList(t *testing.T) {
	_, err := Publications().Validate(map[string]any{"title": "P", "authors": "A. Author"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"authors"}, verr.Fields())
}

func TestArt_DateAndTags(t *testing.T) {
	d := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	rec, err := Art().Validate(map[string]any{
		"title": "A",
		"date":  d,
		"tags":  []any{"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, d, rec["date"])
	assert.Equal(t, []string{"x"}, rec.Strings("tags"))
	_, hasImage := rec["image"]
	assert.False(t, hasImage)
}

func TestValidate_CollectsAllErrorsInSchemaOrder(t *testing.T) {
	_, err := Projects().Validate(map[string]any{
		"featured": "yes",
		"repo":     "ftp//broken",
		"tags":     []any{"ok", 3},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"title", "description", "tags", "repo", "featured"}, verr.Fields())
	assert.Contains(t, verr.Errors[2].Reason, "element 1")
}

func TestValidate_UnknownKeysPassThrough(t *testing.T) {
	rec, err := Art().Validate(map[string]any{"title": "A", "layout": "wide"})
	require.NoError(t, err)
	assert.Equal(t, "wide", rec["layout"])
}

func TestValidate_DateForms(t *testing.T) {
	tests := []struct {
		name string
		in   any
		ok   bool
	}{
		{"timestamp", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"date string", "2024-01-02", true},
		{"rfc3339 string", "2024-01-02T10:00:00Z", true},
		{"free text", "last spring", false},
		{"number", 2024, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Art().Validate(map[string]any{"title": "A", "date": tt.in})
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, time.Time{}, rec["date"])
		})
	}
}

func TestValidate_URLForms(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://example.com/paper.pdf", true},
		{"https://bücher.example/", true},
		{"http://localhost:8080/x", true},
		{"/relative/path", false},
		{"example.com", false},
		{"mailto:someone@example.com", true},
		{"tel:+4712345678", true},
		{"file:///etc/passwd", false},
		{"https://exa mple.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			_, err := Publications().Validate(map[string]any{"title": "P", "link": tt.url})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_NullIsNotAbsent(t *testing.T) {
	_, err := Art().Validate(map[string]any{"title": "A", "medium": nil})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"medium"}, verr.Fields())
	assert.Contains(t, verr.Error(), "got null")
}

func TestValidate_DefaultsAreNotShared(t *testing.T) {
	first, err := Art().Validate(map[string]any{"title": "A"})
	require.NoError(t, err)
	first["tags"] = append(first.Strings("tags"), "mutated")

	second, err := Art().Validate(map[string]any{"title": "B"})
	require.NoError(t, err)
	assert.Empty(t, second.Strings("tags"))
}

func TestValidate_DoesNotModifyInput(t *testing.T) {
	in := map[string]any{"title": "A", "tags": []any{"x"}}
	_, err := Art().Validate(in)
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, in["tags"])
	_, hasMedium := in["medium"]
	assert.False(t, hasMedium)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{
		Collection: "art",
		Entry:      "sunset",
		Errors: []FieldError{
			{Field: "title", Expected: "string", Reason: "required"},
			{Field: "date", Expected: "date", Got: 7, Reason: "wrong type"},
		},
	}
	assert.Equal(t, "art/sunset: 2 invalid fields: title: required string is missing; date: expected date, got int 7 (wrong type)", err.Error())
	assert.True(t, errors.As(error(err), new(*ValidationError)))
}
