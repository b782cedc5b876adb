package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/folio/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses editor save bursts into one callback.
const DefaultDebounce = 300 * time.Millisecond

// Watch monitors dir (recursively) and calls onChange once per burst of
// markdown file events, after debounce of quiet. Directories created while
// watching are picked up. Watch blocks until ctx is cancelled and returns
// nil then; callbacks run on the watching goroutine, never concurrently.
func Watch(ctx context.Context, dir string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := addTree(w, dir); err != nil {
		return err
	}
	slog.Info("Watching content", logfields.Path(dir))

	// Timers follow Go 1.23 semantics: Reset never delivers a stale tick.
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(ev.Name), logfields.Error(err))
					}
					continue
				}
			}
			if !isMarkdown(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("Content change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
