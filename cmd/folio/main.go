package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/folio/cmd/folio/commands"
	"git.home.luguber.info/inful/folio/internal/foundation/errors"
)

func main() {
	cli, err := commands.Execute(os.Args[1:], os.Stdout)
	if err != nil {
		verbose := cli != nil && cli.Verbose
		errors.NewCLIErrorAdapter(verbose, slog.Default()).HandleError(err)
	}
}
