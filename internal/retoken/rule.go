package retoken

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule rewrites every non-overlapping match of Pattern in a text.
// Replacement may reference capture groups ($1, ${name}).
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Word builds a rule matching expr as a whole token: the pattern is wrapped
// in \b anchors so it never matches inside a longer identifier.
func Word(expr, replacement string) (Rule, error) {
	return compile(expr, `\b(?:`+expr+`)\b`, replacement)
}

// Literal builds a rule matching text verbatim, without word anchors.
// Use it for tokens that start or end with punctuation, where \b cannot
// hold (e.g. "text-[rgb(var(--text-primary))]").
func Literal(text, replacement string) Rule {
	return Rule{
		Name:        text,
		Pattern:     regexp.MustCompile(regexp.QuoteMeta(text)),
		Replacement: strings.ReplaceAll(replacement, "$", "$$"),
	}
}

// Regex builds a rule from a raw regular expression.
func Regex(expr, replacement string) (Rule, error) {
	return compile(expr, expr, replacement)
}

// MustWord is like Word but panics on a bad expression. For built-in tables.
func MustWord(expr, replacement string) Rule {
	r, err := Word(expr, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

func compile(name, expr, replacement string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Replacement: replacement}, nil
}

// Apply replaces all matches of the rule in text and returns the result and
// the number of matches replaced.
func (r Rule) Apply(text string) (string, int) {
	n := len(r.Pattern.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return r.Pattern.ReplaceAllString(text, r.Replacement), n
}

// RuleSet is an ordered list of rules applied as one pass.
type RuleSet struct {
	Name  string
	Rules []Rule
}

// Apply runs every rule in order over the evolving text. Each rule sees the
// output of the rules before it; the list is not repeated to a fixed point.
func (rs RuleSet) Apply(text string) string {
	out, _ := rs.ApplyCounting(text)
	return out
}

// ApplyCounting is Apply that also reports matches per rule name.
func (rs RuleSet) ApplyCounting(text string) (string, map[string]int) {
	var counts map[string]int
	for _, r := range rs.Rules {
		var n int
		text, n = r.Apply(text)
		if n == 0 {
			continue
		}
		if counts == nil {
			counts = make(map[string]int)
		}
		counts[r.Name] += n
	}
	return text, counts
}

// Concat joins rule sets into one, preserving order, so a single tree pass
// applies all of them and each file is written at most once.
func Concat(sets ...RuleSet) RuleSet {
	if len(sets) == 1 {
		return sets[0]
	}
	names := make([]string, 0, len(sets))
	var out RuleSet
	for _, s := range sets {
		names = append(names, s.Name)
		out.Rules = append(out.Rules, s.Rules...)
	}
	out.Name = strings.Join(names, "+")
	return out
}
