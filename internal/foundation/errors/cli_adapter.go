package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit codes for the folio command.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the exit code for err.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	ce, ok := AsClassified(err)
	if !ok {
		return 1
	}
	switch ce.Category() {
	case CategoryValidation:
		return 2
	case CategorySchema:
		return 3
	case CategoryNotFound:
		return 4
	case CategoryConfig:
		return 7
	case CategoryGit:
		return 8
	case CategoryInternal:
		return 10
	case CategoryFileSystem:
		return 11
	default:
		return 1
	}
}

// FormatError formats err for display on stderr.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	ce, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return ce.Error()
	}
	switch ce.Category() {
	case CategoryConfig, CategoryValidation, CategorySchema:
		if ce.Cause() != nil {
			return fmt.Sprintf("%s: %v", ce.Message(), ce.Cause())
		}
		return ce.Message()
	case CategoryFileSystem:
		path, _ := ce.Context().GetString("path")
		return fmt.Sprintf("filesystem: %s: %s: %v", ce.Message(), path, ce.Cause())
	default:
		return fmt.Sprintf("%s: %s", ce.Category(), ce.Message())
	}
}

// HandleError logs err, prints it and exits with the matching code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(a.stderr, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	ce, ok := AsClassified(err)
	if !ok {
		return true
	}
	return ce.Category() == CategoryInternal
}

func (a *CLIErrorAdapter) logError(err error) {
	ce, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}
	attrs := []slog.Attr{slog.String("category", string(ce.Category()))}
	for k, v := range ce.Context() {
		attrs = append(attrs, slog.Any(k, v))
	}
	if ce.Cause() != nil {
		attrs = append(attrs, slog.String("error", ce.Cause().Error()))
	}
	a.logger.LogAttrs(context.Background(), levelFor(ce.Severity()), ce.Message(), attrs...)
}

func levelFor(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
