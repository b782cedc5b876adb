package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Orbit\n---\n# Orbit\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Orbit\n"), fm)
	require.Equal(t, []byte("# Orbit\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: Orbit\n# Orbit\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	require.False(t, had)
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: Orbit\r\n---\r\nBody\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Orbit\r\n"), fm)
	require.Equal(t, []byte("Body\r\n"), body)
}

func TestSplit_EmptyBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nBody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("Body\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Orbit\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Orbit\n"), fm)
	require.Empty(t, body)
}

func TestParse_DecodesTypedValues(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Orbit\ndate: 2023-05-01\nfeatured: true\ntags:\n  - space\n  - go\n---\nBody text\n"))
	require.NoError(t, err)

	require.Equal(t, "Orbit", doc.Fields["title"])
	require.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), doc.Fields["date"])
	require.Equal(t, true, doc.Fields["featured"])
	require.Equal(t, []any{"space", "go"}, doc.Fields["tags"])
	require.Equal(t, []byte("Body text\n"), doc.Body)
}

func TestParse_RequiresFrontmatter(t *testing.T) {
	_, err := Parse([]byte("# just markdown\n"))
	require.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: [unclosed\n---\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse frontmatter")
}

func TestParseYAML_EmptyYieldsEmptyMap(t *testing.T) {
	fields, err := ParseYAML([]byte("  \n"))
	require.NoError(t, err)
	require.NotNil(t, fields)
	require.Empty(t, fields)
}
