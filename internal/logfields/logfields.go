package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names shared by folio packages.
const (
	KeyPath       = "path"
	KeyRoot       = "root"
	KeyRule       = "rule"
	KeyRuleSet    = "rule_set"
	KeyCollection = "collection"
	KeyField      = "field"
	KeyCount      = "count"
	KeyFailures   = "failures"
	KeyRunID      = "run_id"
	KeyDurationMS = "duration_ms"
	KeyDryRun     = "dry_run"
	KeyError      = "error"
)

func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Root(p string) slog.Attr       { return slog.String(KeyRoot, p) }
func Rule(name string) slog.Attr    { return slog.String(KeyRule, name) }
func RuleSet(name string) slog.Attr { return slog.String(KeyRuleSet, name) }
func Collection(n string) slog.Attr { return slog.String(KeyCollection, n) }
func Field(name string) slog.Attr   { return slog.String(KeyField, name) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Failures(n int) slog.Attr      { return slog.Int(KeyFailures, n) }
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func DryRun(b bool) slog.Attr       { return slog.Bool(KeyDryRun, b) }

// Duration reports d in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
