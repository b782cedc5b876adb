package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	filesScanned *prom.CounterVec
	filesChanged *prom.CounterVec
	ruleMatches  *prom.CounterVec
	runDuration  *prom.HistogramVec
	runOutcome   *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		filesScanned: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "folio",
			Subsystem: "retoken",
			Name:      "files_scanned_total",
			Help:      "Files read and checked against the rule set",
		}, []string{"rule_set"}),
		filesChanged: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "folio",
			Subsystem: "retoken",
			Name:      "files_changed_total",
			Help:      "Files whose content was altered by the rule set",
		}, []string{"rule_set"}),
		ruleMatches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "folio",
			Subsystem: "retoken",
			Name:      "rule_matches_total",
			Help:      "Occurrences replaced per rule",
		}, []string{"rule_set", "rule"}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "folio",
			Subsystem: "retoken",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a full tree pass",
			Buckets:   prom.DefBuckets,
		}, []string{"rule_set"}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "folio",
			Subsystem: "retoken",
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"rule_set", "outcome"}),
	}
	reg.MustRegister(pr.filesScanned, pr.filesChanged, pr.ruleMatches, pr.runDuration, pr.runOutcome)
	return pr
}

func (p *PrometheusRecorder) IncFilesScanned(ruleSet string) {
	if p == nil {
		return
	}
	p.filesScanned.WithLabelValues(ruleSet).Inc()
}

func (p *PrometheusRecorder) IncFilesChanged(ruleSet string) {
	if p == nil {
		return
	}
	p.filesChanged.WithLabelValues(ruleSet).Inc()
}

func (p *PrometheusRecorder) AddRuleMatches(ruleSet, rule string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.ruleMatches.WithLabelValues(ruleSet, rule).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(ruleSet string, d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.WithLabelValues(ruleSet).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(ruleSet string, outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(ruleSet, string(outcome)).Inc()
}
