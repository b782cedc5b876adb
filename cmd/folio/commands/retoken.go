package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"git.home.luguber.info/inful/folio/internal/config"
	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/logfields"
	"git.home.luguber.info/inful/folio/internal/metrics"
	"git.home.luguber.info/inful/folio/internal/retoken"
	"git.home.luguber.info/inful/folio/internal/util/sets"
	"github.com/go-git/go-billy/v5/osfs"
	prom "github.com/prometheus/client_golang/prometheus"
)

// RetokenCmd implements the 'retoken' command.
type RetokenCmd struct {
	Rules        []string `short:"r" help:"Rule sets to apply in order (colors, text-tokens or a configured name)" default:"colors"`
	Root         string   `help:"Directory to rewrite, overriding every rule set's root"`
	DryRun       bool     `name:"dry-run" help:"Report what would change without writing files"`
	RequireClean bool     `name:"require-clean" help:"Refuse to run unless the git worktree is clean"`
	MetricsFile  string   `name:"metrics-file" help:"Write Prometheus text-format metrics to this file"`
	MaxList      int      `name:"max-list" help:"Maximum changed paths to list (0 uses the configured value)"`
}

func (r *RetokenCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	siteRoot, err := filepath.Abs(cfg.Site.Root)
	if err != nil {
		return errors.FileSystemError(err, "resolve", cfg.Site.Root).Build()
	}
	cfg.Site.Root = siteRoot
	override := r.Root
	if override != "" {
		if override, err = filepath.Abs(override); err != nil {
			return errors.FileSystemError(err, "resolve", r.Root).Build()
		}
	}
	passes, err := cfg.Retoken.Passes(r.Rules, override, cfg.Site.Root)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid rule set selection").
			UserAction().
			WithContext("rules", r.Rules).
			Build()
	}

	if r.RequireClean {
		checked := sets.New[string]()
		for _, p := range passes {
			if checked.Has(p.Root) {
				continue
			}
			checked.Add(p.Root)
			if err := retoken.RequireCleanWorktree(p.Root); err != nil {
				return err
			}
		}
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var reg *prom.Registry
	if r.MetricsFile != "" {
		reg = prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
	}

	changed, runErr := r.runPasses(g, cfg, passes, rec)

	maxList := r.MaxList
	if maxList <= 0 {
		maxList = cfg.Retoken.MaxList
	}
	printChanged(g.Stdout, changed, maxList, r.DryRun)

	if reg != nil {
		if err := metrics.WriteTextfile(r.MetricsFile, reg); err != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(r.MetricsFile), logfields.Error(err))
		}
	}
	return runErr
}

// runPasses applies each pass in order and returns the changed paths,
// relative to the site root, without duplicates.
func (r *RetokenCmd) runPasses(g *Global, cfg *config.Config, passes []config.RetokenPass, rec metrics.Recorder) ([]string, error) {
	var changed []string
	seen := sets.New[string]()
	for _, p := range passes {
		g.Logger.Debug("Starting retoken pass", logfields.RuleSet(p.Rules.Name), logfields.Root(p.Root))
		report, err := retoken.Run(retoken.Options{
			FS:          osfs.New(p.Root),
			Rules:       p.Rules,
			Extensions:  cfg.Retoken.Extensions,
			ExcludeDirs: cfg.Retoken.ExcludeDirs,
			SelfExclude: p.SelfExclude,
			DryRun:      r.DryRun,
			Recorder:    rec,
			Logger:      g.Logger,
		})
		if report != nil {
			for _, rel := range report.Changed {
				display := displayPath(cfg.Site.Root, p.Root, rel)
				if !seen.Has(display) {
					seen.Add(display)
					changed = append(changed, display)
				}
			}
		}
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// displayPath shows rel (relative to passRoot) relative to the site root
// when the pass root lies inside it.
func displayPath(siteRoot, passRoot, rel string) string {
	full := filepath.Join(passRoot, filepath.FromSlash(rel))
	if out, err := filepath.Rel(siteRoot, full); err == nil && filepath.IsLocal(out) {
		return filepath.ToSlash(out)
	}
	return rel
}

func printChanged(w io.Writer, changed []string, maxList int, dryRun bool) {
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run: no files were written")
	}
	_, _ = fmt.Fprintln(w, "Files changed:", len(changed))
	for i, p := range changed {
		if i == maxList {
			_, _ = fmt.Fprintf(w, " ... and %d more\n", len(changed)-maxList)
			break
		}
		_, _ = fmt.Fprintln(w, " -", p)
	}
}
