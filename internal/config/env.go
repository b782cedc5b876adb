package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/folio/internal/logfields"
	"github.com/joho/godotenv"
)

// envFiles are read in order from the configuration directory. godotenv
// never overrides a variable that is already set, so the earlier file and
// the process environment win.
var envFiles = []string{".env.local", ".env"}

// loadEnvFiles loads the .env files next to the configuration file and
// returns the ones found.
func loadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		slog.Debug("Loaded environment file", logfields.Path(p))
		loaded = append(loaded, p)
	}
	return loaded, nil
}
