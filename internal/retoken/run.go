package retoken

import (
	"log/slog"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/logfields"
	"git.home.luguber.info/inful/folio/internal/metrics"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
)

// Options configures a single substitution pass over a tree.
type Options struct {
	// FS is rooted at the tree to rewrite (osfs.New(root) or memfs in tests).
	FS    billy.Filesystem
	Rules RuleSet
	// Extensions is the case-insensitive allow-list, each with its leading dot.
	Extensions []string
	// ExcludeDirs names directories skipped at any depth.
	ExcludeDirs []string
	// SelfExclude skips files whose relative path starts with it. Empty disables.
	SelfExclude string
	// DryRun computes the report without writing anything.
	DryRun bool

	Recorder metrics.Recorder
	Logger   *slog.Logger
}

// Report describes the outcome of a run.
type Report struct {
	RunID string
	// Changed lists relative paths of rewritten files in walk order.
	Changed []string
	// Scanned counts files that were read.
	Scanned int
	// Skipped counts allow-listed files left alone because of SelfExclude.
	Skipped int
	// Matches counts replaced occurrences per rule name.
	Matches map[string]int
	DryRun  bool
}

// Count returns the number of changed files.
func (r *Report) Count() int { return len(r.Changed) }

// Run rewrites every eligible file under opts.FS with opts.Rules.
//
// Files are processed one at a time, each read fully, transformed and
// written back only when the text differs. The first I/O failure aborts the
// run; the returned report still lists files rewritten before it.
func Run(opts Options) (*Report, error) {
	if len(opts.Rules.Rules) == 0 {
		return nil, ferrors.ValidationError("rule set is empty").
			WithContext("rule_set", opts.Rules.Name).
			Build()
	}
	if opts.FS == nil {
		return nil, ferrors.InternalError("retoken: nil filesystem").Build()
	}
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Matches: make(map[string]int),
		DryRun:  opts.DryRun,
	}
	logger = logger.With(logfields.RunID(report.RunID), logfields.RuleSet(opts.Rules.Name))
	start := time.Now()

	err := run(opts, report, rec, logger)

	rec.ObserveRunDuration(opts.Rules.Name, time.Since(start))
	switch {
	case err != nil:
		rec.IncRunOutcome(opts.Rules.Name, metrics.OutcomeFailed)
		logger.Error("Retoken run aborted",
			logfields.Count(report.Count()),
			logfields.Error(err))
	case report.Count() > 0:
		rec.IncRunOutcome(opts.Rules.Name, metrics.OutcomeChanged)
	default:
		rec.IncRunOutcome(opts.Rules.Name, metrics.OutcomeUnchanged)
	}
	if err == nil {
		logger.Info("Retoken run complete",
			slog.Int("scanned", report.Scanned),
			logfields.Count(report.Count()),
			logfields.DryRun(opts.DryRun),
			logfields.Duration(time.Since(start)))
	}
	return report, err
}

func run(opts Options, report *Report, rec metrics.Recorder, logger *slog.Logger) error {
	if _, err := opts.FS.Stat(fsPath("")); err != nil {
		return ferrors.FileSystemError(err, "stat", ".").
			WithContext("root", opts.FS.Root()).
			Build()
	}

	files := Walk(opts.FS, NameFilter(opts.ExcludeDirs), ExtensionFilter(opts.Extensions))
	for f, err := range files {
		if err != nil {
			return ferrors.FileSystemError(err, "walk", relOrDot(f.Rel)).Build()
		}
		if opts.SelfExclude != "" && strings.HasPrefix(f.Rel, opts.SelfExclude) {
			report.Skipped++
			logger.Debug("Skipping self-excluded file", logfields.Path(f.Rel))
			continue
		}
		changed, err := rewriteFile(opts, f, report, rec)
		if err != nil {
			return err
		}
		if changed {
			report.Changed = append(report.Changed, f.Rel)
			rec.IncFilesChanged(opts.Rules.Name)
			logger.Debug("File rewritten", logfields.Path(f.Rel), logfields.DryRun(opts.DryRun))
		}
	}
	return nil
}

// rewriteFile reports whether f's content was (or, in dry-run, would be) changed.
func rewriteFile(opts Options, f File, report *Report, rec metrics.Recorder) (bool, error) {
	data, err := util.ReadFile(opts.FS, fsPath(f.Rel))
	if err != nil {
		return false, ferrors.FileSystemError(err, "read", f.Rel).Build()
	}
	report.Scanned++
	rec.IncFilesScanned(opts.Rules.Name)

	original := string(data)
	updated, counts := opts.Rules.ApplyCounting(original)
	if updated == original {
		return false, nil
	}
	for rule, n := range counts {
		report.Matches[rule] += n
		rec.AddRuleMatches(opts.Rules.Name, rule, n)
	}
	if opts.DryRun {
		return true, nil
	}
	if err := util.WriteFile(opts.FS, fsPath(f.Rel), []byte(updated), f.Mode.Perm()); err != nil {
		return false, ferrors.FileSystemError(err, "write", f.Rel).Build()
	}
	return true, nil
}

func relOrDot(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
