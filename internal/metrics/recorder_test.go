package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestPrometheusRecorder_Gathers(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncFilesScanned("colors")
	pr.IncFilesScanned("colors")
	pr.IncFilesChanged("colors")
	pr.AddRuleMatches("colors", "bg-slate", 3)
	pr.AddRuleMatches("colors", "text-white", 0)
	pr.ObserveRunDuration("colors", 20*time.Millisecond)
	pr.IncRunOutcome("colors", OutcomeChanged)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
		}
	}
	require.Equal(t, 2.0, values["folio_retoken_files_scanned_total"])
	require.Equal(t, 1.0, values["folio_retoken_files_changed_total"])
	require.Equal(t, 3.0, values["folio_retoken_rule_matches_total"])
	require.Equal(t, 1.0, values["folio_retoken_run_outcomes_total"])
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncFilesScanned("x")
	pr.AddRuleMatches("x", "y", 1)
	pr.IncRunOutcome("x", OutcomeFailed)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncFilesChanged("text-tokens")

	path := filepath.Join(t.TempDir(), "nested", "folio.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `folio_retoken_files_changed_total{rule_set="text-tokens"} 1`))
}
