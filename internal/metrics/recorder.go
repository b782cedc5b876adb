package metrics

import "time"

// OutcomeLabel enumerates the final status of a run.
type OutcomeLabel string

const (
	OutcomeChanged   OutcomeLabel = "changed"
	OutcomeUnchanged OutcomeLabel = "unchanged"
	OutcomeFailed    OutcomeLabel = "failed"
)

// Recorder defines observability hooks for a retoken run.
type Recorder interface {
	IncFilesScanned(ruleSet string)
	IncFilesChanged(ruleSet string)
	AddRuleMatches(ruleSet, rule string, n int)
	ObserveRunDuration(ruleSet string, d time.Duration)
	IncRunOutcome(ruleSet string, outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncFilesScanned(string) {}
func (NoopRecorder) IncFilesChanged(string) {}
func (NoopRecorder) AddRuleMatches(string, string, int) {}
func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
func (NoopRecorder) IncRunOutcome(string, OutcomeLabel) {}
