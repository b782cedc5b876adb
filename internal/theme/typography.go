package theme

// Style is a set of CSS declarations in camelCase keys, as the prose plugin
// expects them.
type Style map[string]string

// Typography returns the prose overrides applied to rendered markdown,
// keyed by selector. The "prose" key holds the declarations of the prose
// container itself. Colors reference the site's CSS variables directly.
func Typography() map[string]Style {
	const (
		textPrimary   = "rgb(var(--text-primary))"
		textSecondary = "rgb(var(--text-secondary))"
		bgSecondary   = "rgb(var(--bg-secondary))"
	)
	return map[string]Style{
		"prose": {
			"maxWidth": "none",
			"color":    textPrimary,
		},
		"a": {
			"color":          "rgb(var(--space-indigo-bright))",
			"textDecoration": "underline",
			"fontWeight":     "500",
		},
		"a:hover": {
			"color": "rgb(var(--cta))",
		},
		"h1": {"color": textPrimary, "fontWeight": "700"},
		"h2": {"color": textPrimary, "fontWeight": "700"},
		"h3": {"color": textPrimary, "fontWeight": "600"},
		"h4": {"color": textPrimary, "fontWeight": "600"},
		"code": {
			"color":           textPrimary,
			"backgroundColor": bgSecondary,
			"borderRadius":    "0.25rem",
			"padding":         "0.125rem 0.25rem",
			"fontWeight":      "400",
		},
		"code::before": {"content": `""`},
		"code::after":  {"content": `""`},
		"pre": {
			"backgroundColor": bgSecondary,
			"color":           textPrimary,
			"borderRadius":    "0.5rem",
		},
		"pre code": {
			"backgroundColor": "transparent",
			"padding":         "0",
		},
		"strong": {"color": textPrimary, "fontWeight": "600"},
		"blockquote": {
			"color":           textSecondary,
			"borderLeftColor": "rgb(var(--border-color))",
		},
	}
}
