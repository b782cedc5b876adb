package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/folio/internal/foundation"
	"git.home.luguber.info/inful/folio/internal/nav"
)

// ruleKinds includes "" because an omitted kind means word.
var ruleKinds = []string{"", RuleKindWord, RuleKindLiteral, RuleKindRegex}

var configValidators = foundation.NewValidatorChain(
	validateContent,
	validateNav,
	validateTheme,
	validateRetoken,
)

// Validate checks the whole configuration and reports every problem at
// once as a config error.
func Validate(cfg *Config) error {
	return configValidators.Validate(cfg).ToError("invalid configuration")
}

func validateContent(cfg *Config) foundation.ValidationResult {
	if _, err := cfg.Registry(); err != nil {
		return foundation.Invalid(foundation.NewFieldError("content", "schema", "%v", err))
	}
	return foundation.Valid()
}

func validateNav(cfg *Config) foundation.ValidationResult {
	if _, err := nav.New(cfg.Nav); err != nil {
		return foundation.Invalid(foundation.NewFieldError("nav", "invalid", "%v", err))
	}
	return foundation.Valid()
}

func validateTheme(cfg *Config) foundation.ValidationResult {
	if _, err := cfg.Palette(); err != nil {
		return foundation.Invalid(foundation.NewFieldError("theme.extra_tokens", "invalid", "%v", err))
	}
	return foundation.Valid()
}

func validateRetoken(cfg *Config) foundation.ValidationResult {
	r := cfg.Retoken
	res := foundation.Valid()
	for i, ext := range r.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			res = res.Combine(foundation.Invalid(foundation.NewFieldError(
				fmt.Sprintf("retoken.extensions[%d]", i), "format", "extension %q must start with a dot", ext)))
		}
	}
	for i, d := range r.ExcludeDirs {
		if d == "" || strings.ContainsAny(d, `/\`) {
			res = res.Combine(foundation.Invalid(foundation.NewFieldError(
				fmt.Sprintf("retoken.exclude_dirs[%d]", i), "format", "%q must be a bare directory name", d)))
		}
	}

	seen := make(map[string]bool, len(r.RuleSets))
	for i, rc := range r.RuleSets {
		field := fmt.Sprintf("retoken.rule_sets[%d]", i)
		if rc.Name == "" {
			res = res.Combine(foundation.Invalid(foundation.NewFieldError(field+".name", "required", "must not be empty")))
			continue
		}
		if seen[rc.Name] {
			res = res.Combine(foundation.Invalid(foundation.NewFieldError(field+".name", "duplicate", "rule set %q declared twice", rc.Name)))
			continue
		}
		seen[rc.Name] = true
		kinds := foundation.Valid()
		for j, rule := range rc.Rules {
			kinds = kinds.Combine(foundation.OneOf(fmt.Sprintf("%s.rules[%d].kind", field, j), ruleKinds)(rule.Kind))
		}
		if !kinds.Valid {
			res = res.Combine(kinds)
			continue
		}
		if _, _, err := r.RuleSet(rc.Name); err != nil {
			res = res.Combine(foundation.Invalid(foundation.NewFieldError(field, "rules", "%v", err)))
		}
	}
	return res
}
