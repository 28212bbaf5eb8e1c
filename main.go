package main

import (
	"github.com/KrOnAsK/swatch/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("swatch"),
		kong.Description("Terminal-native viewer for colorblind-safe chart palettes."),
	)
	err := ctx.Run(&commands.Context{Width: commands.Cli.Width})
	ctx.FatalIfErrorf(err)
}
