package config

import (
	"bytes"
	"os"

	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

const exampleHeader = `# folio configuration.
# ${VAR} references are expanded from the environment (.env and .env.local
# next to this file are loaded first).
`

// Init writes an example configuration (the defaults) to path. An existing
// file is only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	var buf bytes.Buffer
	buf.WriteString(exampleHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example configuration").Build()
	}
	if err := enc.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example configuration").Build()
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.FileSystemError(err, "write", path).Build()
	}
	return nil
}
