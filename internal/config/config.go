// Package config loads folio.yaml: site metadata, content collections,
// navigation, theme tokens and retoken rule sets.
package config

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/folio/internal/nav"
	"git.home.luguber.info/inful/folio/internal/retoken"
	"git.home.luguber.info/inful/folio/internal/schema"
	"git.home.luguber.info/inful/folio/internal/theme"
)

// CurrentVersion is the only configuration version understood.
const CurrentVersion = "1"

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "folio.yaml"

// Config is the root of folio.yaml.
type Config struct {
	Version string        `yaml:"version"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Nav     []nav.Link    `yaml:"nav"`
	Theme   ThemeConfig   `yaml:"theme"`
	Retoken RetokenConfig `yaml:"retoken"`
}

// SiteConfig describes the site being maintained.
type SiteConfig struct {
	Title   string `yaml:"title"`
	BaseURL string `yaml:"base_url"`
	// Root is the site checkout; other relative paths resolve against it.
	Root string `yaml:"root"`
}

// ContentConfig selects the content collections to validate and index.
type ContentConfig struct {
	Dir string `yaml:"dir"`
	// Collections enables a subset of the registered collections. Empty
	// enables all of them.
	Collections []string `yaml:"collections,omitempty"`
	// Schemas declares additional collections.
	Schemas   []CollectionConfig `yaml:"schemas,omitempty"`
	IndexFile string             `yaml:"index_file"`
}

// CollectionConfig declares a collection schema in configuration.
type CollectionConfig struct {
	Name   string        `yaml:"name"`
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig declares one field of a configured collection.
type FieldConfig struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
	Default  any    `yaml:"default,omitempty"`
}

// ThemeConfig extends the default token palette.
type ThemeConfig struct {
	ExtraTokens []string `yaml:"extra_tokens,omitempty"`
}

// RetokenConfig drives `folio retoken`.
type RetokenConfig struct {
	Root        string   `yaml:"root"`
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// SelfExclude is a path prefix, relative to the site root, never
	// rewritten. Nil means the default ("scripts"); an empty string
	// disables it.
	SelfExclude *string         `yaml:"self_exclude,omitempty"`
	MaxList     int             `yaml:"max_list"`
	RuleSets    []RuleSetConfig `yaml:"rule_sets"`
}

// RuleSetConfig is a named, ordered rule list. A set named after a
// built-in ("colors", "text-tokens") without rules uses the built-in rules.
type RuleSetConfig struct {
	Name string `yaml:"name"`
	// Root overrides RetokenConfig.Root for this set.
	Root  string       `yaml:"root,omitempty"`
	Rules []RuleConfig `yaml:"rules,omitempty"`
}

// RuleConfig is one substitution.
type RuleConfig struct {
	// Kind is word (default), literal or regex.
	Kind    string `yaml:"kind,omitempty"`
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// Rule kinds.
const (
	RuleKindWord    = "word"
	RuleKindLiteral = "literal"
	RuleKindRegex   = "regex"
)

// DefaultExtensions are the file types the site's sources use.
var DefaultExtensions = []string{".astro", ".html", ".js", ".jsx", ".ts", ".tsx", ".css", ".md", ".mdx"}

// DefaultExcludeDirs are never descended into.
var DefaultExcludeDirs = []string{"node_modules", ".git"}

// DefaultSelfExclude keeps the migration scripts out of their own pass.
const DefaultSelfExclude = "scripts"

// DefaultMaxList caps the changed-file listing printed by retoken.
const DefaultMaxList = 200

// Default returns the configuration of the portfolio site as shipped.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Portfolio"
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "https://piyush-jain.me"
	}
	if cfg.Site.Root == "" {
		cfg.Site.Root = "."
	}
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "src/content"
	}
	if cfg.Content.IndexFile == "" {
		cfg.Content.IndexFile = "src/content/index.json"
	}
	if len(cfg.Nav) == 0 {
		cfg.Nav = nav.DefaultLinks()
	}

	r := &cfg.Retoken
	if r.Root == "" {
		r.Root = "."
	}
	if len(r.Extensions) == 0 {
		r.Extensions = slices.Clone(DefaultExtensions)
	}
	if r.ExcludeDirs == nil {
		r.ExcludeDirs = slices.Clone(DefaultExcludeDirs)
	}
	if r.SelfExclude == nil {
		s := DefaultSelfExclude
		r.SelfExclude = &s
	}
	if r.MaxList <= 0 {
		r.MaxList = DefaultMaxList
	}
	if len(r.RuleSets) == 0 {
		r.RuleSets = []RuleSetConfig{
			{Name: retoken.RuleSetColors},
			{Name: retoken.RuleSetTextTokens, Root: "src"},
		}
	}
}

// Registry returns the enabled collection schemas: the built-ins plus
// configured ones, restricted to Content.Collections when set.
func (c *Config) Registry() (*schema.Registry, error) {
	reg := schema.Builtin()
	for _, cc := range c.Content.Schemas {
		s, err := cc.Schema()
		if err != nil {
			return nil, err
		}
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	if len(c.Content.Collections) == 0 {
		return reg, nil
	}
	return reg.Only(c.Content.Collections...)
}

// Schema converts the declaration into a schema.Schema. A field with a
// default is optional.
func (cc CollectionConfig) Schema() (schema.Schema, error) {
	s := schema.Schema{Name: cc.Name}
	for _, fc := range cc.Fields {
		ft, err := schema.ParseFieldType(fc.Type)
		if err != nil {
			return schema.Schema{}, err
		}
		def := fc.Default
		if def != nil {
			// Run the default through the field's own conversion so it has
			// the same Go type as a validated value.
			probe := schema.Schema{Name: cc.Name, Fields: []schema.Field{schema.Optional(fc.Name, ft)}}
			rec, err := probe.Validate(map[string]any{fc.Name: def})
			if err != nil {
				return schema.Schema{}, fmt.Errorf("default of %s.%s: %w", cc.Name, fc.Name, err)
			}
			def = rec[fc.Name]
		}
		s.Fields = append(s.Fields, schema.Field{
			Name:     fc.Name,
			Type:     ft,
			Optional: fc.Optional || def != nil,
			Default:  def,
		})
	}
	return s, nil
}

// Menu builds the navigation menu.
func (c *Config) Menu() (*nav.Menu, error) {
	return nav.New(c.Nav)
}

// Palette builds the theme palette: default tokens plus extras.
func (c *Config) Palette() (*theme.Palette, error) {
	return theme.New(slices.Concat(theme.DefaultTokens, c.Theme.ExtraTokens)...)
}

// SelfExcludePrefix returns the effective self-exclusion prefix.
func (r RetokenConfig) SelfExcludePrefix() string {
	if r.SelfExclude == nil {
		return DefaultSelfExclude
	}
	return *r.SelfExclude
}
