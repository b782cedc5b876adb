package commands

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/logfields"
	"git.home.luguber.info/inful/folio/internal/theme"
)

// ThemeCmd groups theme-related commands.
type ThemeCmd struct {
	Resolve ThemeResolveCmd `cmd:"" help:"Print the color expression of a token"`
	Export  ThemeExportCmd  `cmd:"" help:"Write the palette and typography for the CSS build"`
}

// ThemeResolveCmd implements 'folio theme resolve'.
type ThemeResolveCmd struct {
	Name    string  `arg:"" help:"Semantic token name (brand, cta, surface, ...)"`
	Opacity *string `help:"Opacity value or CSS expression"`
}

func (t *ThemeResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	p, err := cfg.Palette()
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid theme tokens").Build()
	}
	expr, err := p.Resolve(t.Name, t.Opacity)
	if err != nil {
		var unknown *theme.UnknownTokenError
		if stderrors.As(err, &unknown) {
			return errors.WrapError(err, errors.CategoryValidation, "unknown token").
				UserAction().
				WithContext("valid", p.Tokens()).
				Build()
		}
		return err
	}
	_, _ = fmt.Fprintln(g.Stdout, expr)
	return nil
}

// ThemeExportCmd implements 'folio theme export'.
type ThemeExportCmd struct {
	Format string `short:"f" help:"Output format (json or yaml)" default:"json"`
	Output string `short:"o" help:"Write to this file instead of stdout"`
}

func (t *ThemeExportCmd) Run(g *Global, root *CLI) error {
	format, err := theme.ParseFormat(t.Format)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid export format").UserAction().Build()
	}
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	p, err := cfg.Palette()
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid theme tokens").Build()
	}

	if t.Output == "" {
		return p.Export(g.Stdout, format)
	}
	f, err := os.Create(t.Output)
	if err != nil {
		return errors.FileSystemError(err, "create", t.Output).Build()
	}
	if err := export(f, p, format); err != nil {
		return errors.FileSystemError(err, "write", t.Output).Build()
	}
	g.Logger.Info("Theme exported", logfields.Path(t.Output), "format", string(format))
	return nil
}

func export(f io.WriteCloser, p *theme.Palette, format theme.Format) error {
	if err := p.Export(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
