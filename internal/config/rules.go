package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/folio/internal/retoken"
)

// RetokenPass is one walk over a tree with a rule set.
type RetokenPass struct {
	Root        string
	Rules       retoken.RuleSet
	// SelfExclude is the self_exclude prefix re-expressed relative to Root,
	// or empty when the excluded path does not lie below Root.
	SelfExclude string
}

// RuleSet compiles the configured set called name. A built-in name that is
// not configured, or configured without rules, yields the built-in set.
func (r RetokenConfig) RuleSet(name string) (retoken.RuleSet, string, error) {
	for _, rc := range r.RuleSets {
		if rc.Name != name {
			continue
		}
		root := rc.Root
		if root == "" {
			root = r.Root
		}
		if len(rc.Rules) == 0 {
			rs, ok := retoken.Builtin(name)
			if !ok {
				return retoken.RuleSet{}, "", fmt.Errorf("rule set %q has no rules", name)
			}
			return rs, root, nil
		}
		rs, err := rc.compile()
		return rs, root, err
	}
	if rs, ok := retoken.Builtin(name); ok {
		return rs, r.Root, nil
	}
	return retoken.RuleSet{}, "", fmt.Errorf("unknown rule set %q (built-in: %s)", name, strings.Join(retoken.BuiltinNames(), ", "))
}

func (rc RuleSetConfig) compile() (retoken.RuleSet, error) {
	rs := retoken.RuleSet{Name: rc.Name, Rules: make([]retoken.Rule, 0, len(rc.Rules))}
	for i, rule := range rc.Rules {
		compiled, err := rule.compile()
		if err != nil {
			return retoken.RuleSet{}, fmt.Errorf("rule set %q, rule %d: %w", rc.Name, i, err)
		}
		rs.Rules = append(rs.Rules, compiled)
	}
	return rs, nil
}

func (rule RuleConfig) compile() (retoken.Rule, error) {
	if rule.Match == "" {
		return retoken.Rule{}, errors.New("empty match")
	}
	switch rule.Kind {
	case "", RuleKindWord:
		return retoken.Word(rule.Match, rule.Replace)
	case RuleKindLiteral:
		return retoken.Literal(rule.Match, rule.Replace), nil
	case RuleKindRegex:
		return retoken.Regex(rule.Match, rule.Replace)
	default:
		return retoken.Rule{}, fmt.Errorf("unknown rule kind %q", rule.Kind)
	}
}

// Passes resolves rule set names into walks, in order. Consecutive sets
// that share a root are concatenated into a single pass so each file is
// written at most once per pass. A non-empty rootOverride applies to every
// set. Relative roots resolve against base, the site root, and so does the
// self_exclude prefix: a set rooted at "src" is not affected by "scripts".
func (r RetokenConfig) Passes(names []string, rootOverride, base string) ([]RetokenPass, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	var passes []RetokenPass
	for _, name := range names {
		rs, root, err := r.RuleSet(name)
		if err != nil {
			return nil, err
		}
		if rootOverride != "" {
			root = rootOverride
		}
		if !filepath.IsAbs(root) {
			root = filepath.Join(base, root)
		}
		if n := len(passes); n > 0 && passes[n-1].Root == root {
			passes[n-1].Rules = retoken.Concat(passes[n-1].Rules, rs)
			continue
		}
		passes = append(passes, RetokenPass{
			Root:        root,
			Rules:       rs,
			SelfExclude: relativePrefix(base, root, r.SelfExcludePrefix()),
		})
	}
	return passes, nil
}

// relativePrefix re-roots prefix (relative to base) onto root. It returns
// "" when the prefix is empty, equals root, or lies outside it.
func relativePrefix(base, root, prefix string) string {
	if prefix == "" {
		return ""
	}
	rel, err := filepath.Rel(root, filepath.Join(base, filepath.FromSlash(prefix)))
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return ""
	}
	return filepath.ToSlash(rel)
}
