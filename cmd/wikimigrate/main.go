package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/wikimigrate/cmd/wikimigrate/commands"
	"git.home.luguber.info/inful/wikimigrate/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("wikimigrate"),
		kong.Description("Convert a hierarchical markdown documentation tree into flat-namespace wiki pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ctx.FatalIfErrorf(err)
}
