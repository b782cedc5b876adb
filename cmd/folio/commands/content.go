package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/folio/internal/config"
	"git.home.luguber.info/inful/folio/internal/content"
	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/logfields"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Watch    bool          `short:"w" help:"Re-validate whenever content files change"`
	Debounce time.Duration `help:"Quiet period before re-validating in watch mode" default:"300ms"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if !v.Watch {
		_, err := loadContent(g, cfg)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Report the starting state; failures are printed, not fatal, while watching.
	_, _ = loadContent(g, cfg)
	return content.Watch(ctx, contentDir(cfg), v.Debounce, func() {
		_, _ = loadContent(g, cfg)
	})
}

// IndexCmd implements the 'index' command.
type IndexCmd struct {
	Output string `short:"o" help:"Write the index here instead of the configured index_file (- for stdout)"`
}

func (i *IndexCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	res, err := loadContent(g, cfg)
	if err != nil {
		return err
	}
	ix, err := content.BuildIndex(res.Entries)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to build content index").Build()
	}

	if i.Output == "-" {
		return ix.WriteJSON(g.Stdout)
	}
	out := i.Output
	if out == "" {
		out = resolve(cfg.Site.Root, cfg.Content.IndexFile)
	}
	if err := writeIndex(out, ix); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Stdout, "Indexed %d entries to %s\n", len(ix.Entries), out)
	for _, name := range indexedCollections(ix) {
		_, _ = fmt.Fprintf(g.Stdout, "  %s: %d\n", name, len(ix.Collection(name)))
	}
	return nil
}

// indexedCollections lists the collections present in ix. Entries are
// grouped by collection, so adjacent duplicates are all there is to skip.
func indexedCollections(ix *content.Index) []string {
	var names []string
	for _, e := range ix.Entries {
		if n := len(names); n == 0 || names[n-1] != e.Collection {
			names = append(names, e.Collection)
		}
	}
	return names
}

func writeIndex(path string, ix *content.Index) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.FileSystemError(err, "mkdir", filepath.Dir(path)).Build()
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.FileSystemError(err, "create", path).Build()
	}
	if err := ix.WriteJSON(f); err != nil {
		_ = f.Close()
		return errors.FileSystemError(err, "write", path).Build()
	}
	if err := f.Close(); err != nil {
		return errors.FileSystemError(err, "close", path).Build()
	}
	return nil
}

// loadContent loads and validates every enabled collection, printing one
// line per invalid document to stdout.
func loadContent(g *Global, cfg *config.Config) (*content.Result, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid collection configuration").
			UserAction().
			Build()
	}
	fsys, dir := contentFS(cfg)
	res, err := content.Load(fsys, dir, reg)
	if err != nil {
		return nil, err
	}
	printFailures(g.Stdout, res.Failures)
	g.Logger.Info("Content validated",
		logfields.Count(len(res.Entries)),
		logfields.Path(contentDir(cfg)),
		logfields.Failures(len(res.Failures)))
	if err := res.Err(); err != nil {
		return res, err
	}
	_, _ = fmt.Fprintf(g.Stdout, "%d entries valid\n", len(res.Entries))
	return res, nil
}

func printFailures(w io.Writer, failures []content.Failure) {
	for _, f := range failures {
		_, _ = fmt.Fprintf(w, "✗ %s\n", f.Error())
	}
}

// contentFS returns the filesystem and in-filesystem directory for
// Content.Dir, rooted at the site root unless the directory is absolute.
func contentFS(cfg *config.Config) (billy.Filesystem, string) {
	if filepath.IsAbs(cfg.Content.Dir) {
		return osfs.New(cfg.Content.Dir), "."
	}
	return osfs.New(cfg.Site.Root), filepath.ToSlash(cfg.Content.Dir)
}

func contentDir(cfg *config.Config) string {
	return resolve(cfg.Site.Root, cfg.Content.Dir)
}
