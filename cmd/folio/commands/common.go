// Package commands implements the folio command line.
package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/folio/internal/config"
	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/version"
	"github.com/alecthomas/kong"
)

// Global is bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
	// Stdout receives command output; logs go to stderr.
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"folio.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Retoken  RetokenCmd  `cmd:"" help:"Rewrite utility-class tokens across the site sources"`
	Validate ValidateCmd `cmd:"" help:"Validate content collections against their schemas"`
	Index    IndexCmd    `cmd:"" help:"Write the content index manifest"`
	Theme    ThemeCmd    `cmd:"" help:"Resolve and export theme color tokens"`
	Nav      NavCmd      `cmd:"" help:"Print the navigation menu"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Execute parses args and runs the selected command with output on stdout.
// The returned CLI is nil when parsing failed before flags were applied.
func Execute(args []string, stdout io.Writer, options ...kong.Option) (*CLI, error) {
	cli := &CLI{}
	opts := append([]kong.Option{
		kong.Name("folio"),
		kong.Description("Content, theme and migration tooling for the portfolio site."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	}, options...)
	parser, err := kong.New(cli, opts...)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to build command line").Build()
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return cli, errors.WrapError(err, errors.CategoryValidation, "invalid arguments").
			UserAction().
			Build()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return cli, ctx.Run(&Global{Logger: slog.Default(), Stdout: stdout})
}

// loadConfig reads the configuration. Only the default path may be absent.
func loadConfig(path string) (*config.Config, error) {
	if path == config.DefaultFile {
		return config.LoadOrDefault(path)
	}
	return config.Load(path)
}

// resolve joins a relative path onto base.
func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
