package config

import (
	"os"
	"path/filepath"
	"testing"

	ferrors "git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/nav"
	"git.home.luguber.info/inful/folio/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault_MatchesSite(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "https://piyush-jain.me", cfg.Site.BaseURL)
	assert.Equal(t, "src/content", cfg.Content.Dir)
	assert.Equal(t, nav.DefaultLinks(), cfg.Nav)
	assert.Equal(t, DefaultExtensions, cfg.Retoken.Extensions)
	assert.Equal(t, []string{"node_modules", ".git"}, cfg.Retoken.ExcludeDirs)
	assert.Equal(t, "scripts", cfg.Retoken.SelfExcludePrefix())
	assert.Equal(t, 200, cfg.Retoken.MaxList)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "projects", "publications"}, reg.Names())
}

func TestLoad_ExpandsEnvAndAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_TEST_TITLE", "From Env")
	p := writeConfig(t, dir, `
version: "1"
site:
  title: ${FOLIO_TEST_TITLE}
content:
  collections: [art]
nav:
  - href: /
  - href: /art
    label: Gallery
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Site.Title)
	assert.Equal(t, dir, cfg.Site.Root)
	assert.Equal(t, "src/content", cfg.Content.Dir)

	menu, err := cfg.Menu()
	require.NoError(t, err)
	assert.Equal(t, []nav.Link{{Href: "/", Label: "Home"}, {Href: "/art", Label: "Gallery"}}, menu.Links())

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"art"}, reg.Names())
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_TEST_SET", "process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_TEST_SET=file\nFOLIO_TEST_BASE=https://example.org\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FOLIO_TEST_BASE") })

	p := writeConfig(t, dir, "site:\n  title: ${FOLIO_TEST_SET}\n  base_url: ${FOLIO_TEST_BASE}\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "process", cfg.Site.Title)
	assert.Equal(t, "https://example.org", cfg.Site.BaseURL)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_RejectsUnknownKeysAndVersions(t *testing.T) {
	_, err := Parse([]byte("sitee:\n  title: x\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	_, err = Parse([]byte("version: \"2\"\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_SelfExcludeCanBeDisabled(t *testing.T) {
	cfg, err := Parse([]byte("retoken:\n  self_exclude: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Retoken.SelfExcludePrefix())
}

func TestParse_CustomCollection(t *testing.T) {
	cfg, err := Parse([]byte(`
content:
  schemas:
    - name: talks
      fields:
        - {name: title, type: string}
        - {name: slides, type: url, optional: true}
        - {name: topics, type: list, default: []}
        - {name: recorded, type: bool, default: false}
`))
	require.NoError(t, err)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	talks, ok := reg.Lookup("talks")
	require.True(t, ok)

	rec, err := talks.Validate(map[string]any{"title": "Go at scale"})
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"title": "Go at scale", "topics": []string{}, "recorded": false}, rec)
}

func TestPalette_ExtraTokens(t *testing.T) {
	cfg, err := Parse([]byte("theme:\n  extra_tokens: [highlight]\n"))
	require.NoError(t, err)
	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.True(t, p.Has("highlight"))
	assert.True(t, p.Has("brand"))
}
