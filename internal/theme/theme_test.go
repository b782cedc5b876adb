package theme

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		opacity *string
		want    string
	}{
		{"no opacity", "brand", nil, "rgb(var(--brand))"},
		{"numeric opacity", "surface", ptr("0.5"), "rgb(var(--surface) / 0.5)"},
		{"variable opacity", "on-brand", ptr("var(--tw-bg-opacity)"), "rgb(var(--on-brand) / var(--tw-bg-opacity))"},
		{"empty opacity is kept verbatim", "muted", ptr(""), "rgb(var(--muted) / )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.token, tt.opacity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_EveryDefaultToken(t *testing.T) {
	for _, tok := range DefaultTokens {
		got, err := Resolve(tok, nil)
		require.NoError(t, err)
		assert.Equal(t, "rgb(var(--"+tok+"))", got)
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	_, err := Resolve("primary", nil)
	var unknown *UnknownTokenError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "primary", unknown.Name)
}

func TestNew_ExtendsAndValidates(t *testing.T) {
	p, err := New(append(slices.Clone(DefaultTokens), "highlight")...)
	require.NoError(t, err)
	got, err := p.Resolve("highlight", ptr("0.2"))
	require.NoError(t, err)
	assert.Equal(t, "rgb(var(--highlight) / 0.2)", got)

	_, err = New("brand", "brand")
	assert.ErrorContains(t, err, "declared twice")

	_, err = New("Brand")
	assert.ErrorContains(t, err, "invalid token name")

	_, err = New("on--brand")
	assert.Error(t, err)
}

func TestPalette_Colors(t *testing.T) {
	colors := Default().Colors()
	require.Len(t, colors, len(DefaultTokens))
	assert.Equal(t, Color{
		Opaque: "rgb(var(--cta))",
		Alpha:  "rgb(var(--cta) / <alpha-value>)",
	}, colors["cta"])
}

func TestPalette_TokensIsACopy(t *testing.T) {
	p := Default()
	toks := p.Tokens()
	toks[0] = "changed"
	assert.Equal(t, "brand", p.Tokens()[0])
	assert.Equal(t, "brand", DefaultTokens[0])
}

func TestTypography(t *testing.T) {
	typo := Typography()
	assert.Equal(t, "rgb(var(--cta))", typo["a:hover"]["color"])
	assert.Equal(t, "700", typo["h2"]["fontWeight"])
	assert.Equal(t, "rgb(var(--border-color))", typo["blockquote"]["borderLeftColor"])
	assert.Equal(t, `""`, typo["code::before"]["content"])
	assert.Equal(t, "none", typo["prose"]["maxWidth"])
}
