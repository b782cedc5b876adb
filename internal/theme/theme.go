// Package theme maps semantic color tokens to CSS custom-property
// expressions so utility classes can be themed at runtime.
package theme

import (
	"fmt"
	"regexp"
	"slices"
)

// DefaultTokens are the semantic colors of the site, in declaration order.
var DefaultTokens = []string{
	"brand",
	"cta",
	"surface",
	"bg",
	"text",
	"muted",
	"border",
	"on-brand",
	"accent",
}

var tokenName = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Palette is an ordered set of token names.
type Palette struct {
	tokens []string
}

// Default returns the palette of DefaultTokens.
func Default() *Palette {
	return &Palette{tokens: slices.Clone(DefaultTokens)}
}

// New builds a palette. Names must be lower-case kebab identifiers and
// unique.
func New(tokens ...string) (*Palette, error) {
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if !tokenName.MatchString(t) {
			return nil, fmt.Errorf("invalid token name %q", t)
		}
		if seen[t] {
			return nil, fmt.Errorf("token %q declared twice", t)
		}
		seen[t] = true
	}
	return &Palette{tokens: slices.Clone(tokens)}, nil
}

// Tokens returns the token names in order.
func (p *Palette) Tokens() []string {
	return slices.Clone(p.tokens)
}

// Has reports whether name is a token of the palette.
func (p *Palette) Has(name string) bool {
	return slices.Contains(p.tokens, name)
}

// Resolve returns the CSS color expression for token name:
// rgb(var(--name)) without opacity, rgb(var(--name) / opacity) with one.
// The opacity is inserted verbatim, so it may itself be a var() expression.
func (p *Palette) Resolve(name string, opacity *string) (string, error) {
	if !p.Has(name) {
		return "", &UnknownTokenError{Name: name}
	}
	return expression(name, opacity), nil
}

// Resolve resolves name against the default palette.
func Resolve(name string, opacity *string) (string, error) {
	return Default().Resolve(name, opacity)
}

func expression(name string, opacity *string) string {
	if opacity == nil {
		return "rgb(var(--" + name + "))"
	}
	return "rgb(var(--" + name + ") / " + *opacity + ")"
}

// UnknownTokenError is returned for a name outside the palette.
type UnknownTokenError struct {
	Name string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown theme token %q", e.Name)
}

// AlphaPlaceholder is the opacity slot Tailwind fills per utility class.
const AlphaPlaceholder = "<alpha-value>"

// Color is the exported form of one token.
type Color struct {
	// Opaque is the expression without opacity.
	Opaque string `json:"opaque" yaml:"opaque"`
	// Alpha is the template with AlphaPlaceholder as opacity.
	Alpha string `json:"alpha" yaml:"alpha"`
}

// Colors returns every token's expressions keyed by token name.
func (p *Palette) Colors() map[string]Color {
	alpha := AlphaPlaceholder
	out := make(map[string]Color, len(p.tokens))
	for _, t := range p.tokens {
		out[t] = Color{Opaque: expression(t, nil), Alpha: expression(t, &alpha)}
	}
	return out
}
