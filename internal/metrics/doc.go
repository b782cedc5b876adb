// Package metrics provides run metrics for folio's retoken utility.
//
// Components receive a Recorder through their options. The default is
// NoopRecorder, so callers never nil-check:
//
//	opts := retoken.Options{Recorder: metrics.NoopRecorder{}}
//
// When the command is asked for a metrics file, a PrometheusRecorder is
// registered on a private registry and the registry is written once at the
// end of the run in text exposition format (node-exporter textfile style),
// which suits a one-shot CLI that never serves HTTP.
package metrics
