package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Load reads, expands, defaults and validates the configuration at path.
//
// `.env.local` and `.env` next to the file are loaded first, then ${VAR}
// references in the YAML are expanded from the environment. Relative
// Site.Root is resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewError(errors.CategoryNotFound, "configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.FileSystemError(err, "read", path).Build()
	}

	dir := filepath.Dir(path)
	if _, err := loadEnvFiles(dir); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to load environment file").
			Fatal().
			WithContext("dir", dir).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.Site.Root) {
		cfg.Site.Root = filepath.Join(dir, cfg.Site.Root)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default() when path does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.HasCategory(err, errors.CategoryNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML (already expanded), applies defaults and validates.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration").
				Fatal().
				UserAction().
				Build()
		}
	}
	if cfg.Version != "" && cfg.Version != CurrentVersion {
		return nil, errors.ConfigError("unsupported configuration version").
			WithContext("version", cfg.Version).
			WithContext("expected", CurrentVersion).
			Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
