package retoken

import "git.home.luguber.info/inful/folio/internal/util/sets"

const (
	RuleSetColors     = "colors"
	RuleSetTextTokens = "text-tokens"
)

// Colors maps raw Tailwind slate/white utilities onto the semantic color
// tokens. Order matters: the plain bg-slate rule already rewrites the
// bg-slate part of dark: and hover: variants, so the prefixed rules only
// catch what remains.
func Colors() RuleSet {
	return RuleSet{
		Name: RuleSetColors,
		Rules: []Rule{
			MustWord(`bg-slate-\d+`, "bg-surface"),
			MustWord(`dark:bg-slate-\d+`, "dark:bg-surface"),
			MustWord(`hover:bg-slate-\d+`, "hover:bg-surface"),
			MustWord(`dark:hover:bg-slate-\d+`, "dark:hover:bg-surface"),

			MustWord(`text-slate-\d+`, "text-muted"),
			MustWord(`dark:text-slate-\d+`, "dark:text-muted"),

			MustWord(`dark:text-white`, "dark:text-on-brand"),
			MustWord(`text-white`, "text-on-brand"),

			MustWord(`border-slate-\d+`, "border-border"),
			MustWord(`dark:border-slate-\d+`, "dark:border-border"),

			MustWord(`bg-white`, "bg-surface"),
			MustWord(`dark:bg-white`, "dark:bg-surface"),

			MustWord(`hover:text-white`, "hover:text-on-brand"),
		},
	}
}

// TextTokens collapses arbitrary-value text colors that point at the old
// --text-* variables into the text/muted tokens.
func TextTokens() RuleSet {
	return RuleSet{
		Name: RuleSetTextTokens,
		Rules: []Rule{
			Literal("text-[rgb(var(--text-secondary))]", "text-muted"),
			Literal("text-[rgb(var(--text-primary))]", "text-text"),
			Literal("dark:text-[rgb(var(--text-secondary))]", "dark:text-muted"),
			Literal("dark:text-[rgb(var(--text-primary))]", "dark:text-text"),
			Literal("hover:text-[rgb(var(--text-secondary))]", "hover:text-muted"),
			Literal("hover:text-[rgb(var(--text-primary))]", "hover:text-text"),
		},
	}
}

var builtins = map[string]func() RuleSet{
	RuleSetColors:     Colors,
	RuleSetTextTokens: TextTokens,
}

// Builtin returns the named built-in rule set.
func Builtin(name string) (RuleSet, bool) {
	f, ok := builtins[name]
	if !ok {
		return RuleSet{}, false
	}
	return f(), true
}

// BuiltinNames lists the built-in rule set names.
func BuiltinNames() []string {
	names := sets.New[string]()
	for n := range builtins {
		names.Add(n)
	}
	return sets.Sorted(names)
}
