package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCanonical_SortsKeysAndSkips(t *testing.T) {
	fields := map[string]any{
		"title":       "Orbit",
		"date":        time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		"tags":        []string{"b", "a"},
		"featured":    false,
		"fingerprint": "ignored",
		"meta":        map[string]any{"z": 1, "a": 2.5},
	}

	out, err := Canonical(fields, "fingerprint")
	require.NoError(t, err)
	require.Equal(t, "date: 2023-05-01\nfeatured: false\nmeta:\n  a: 2.5\n  z: 1\ntags:\n  - b\n  - a\ntitle: Orbit\n", string(out))
}

func TestCanonical_Deterministic(t *testing.T) {
	fields := map[string]any{"a": "1", "b": []any{"x", true}, "c": nil}
	first, err := Canonical(fields)
	require.NoError(t, err)
	for range 10 {
		again, err := Canonical(fields)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestCanonical_TimestampKeepsTime(t *testing.T) {
	out, err := Canonical(map[string]any{"date": time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Equal(t, "date: 2023-05-01T10:30:00Z\n", string(out))
}

func TestCanonical_Empty(t *testing.T) {
	out, err := Canonical(map[string]any{"fingerprint": "x"}, "fingerprint")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCanonical_UnsupportedType(t *testing.T) {
	_, err := Canonical(map[string]any{"bad": struct{}{}})
	require.Error(t, err)
}
