package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/folio/internal/foundation/errors"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Active string `help:"Mark the link that is active for this page path"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	menu, err := cfg.Menu()
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid navigation").UserAction().Build()
	}

	var active string
	if n.Active != "" {
		if l, ok := menu.Active(n.Active); ok {
			active = l.Href
		}
	}

	tw := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range menu.Links() {
		marker := " "
		if l.Href == active {
			marker = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", marker, l.Href, l.Label)
	}
	return tw.Flush()
}
