package metrics

import (
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric gathered from reg to path in the
// Prometheus text format. The parent directory is created if needed.
func WriteTextfile(path string, reg prom.Gatherer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return prom.WriteToTextfile(path, reg)
}
