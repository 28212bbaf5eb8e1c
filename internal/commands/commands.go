package commands

type Context struct {
	Width int
}

var Cli struct {
	Width int `help:"Override terminal width for chart rendering (0 = autodetect)." default:"0"`

	List      ListCmd      `cmd:"" help:"List registered palettes."`
	Show      ShowCmd      `cmd:"" help:"Show a palette's colors."`
	Css       CssCmd       `cmd:"" name:"css" help:"Render a palette as CSS variables."`
	Colormaps ColormapsCmd `cmd:"" help:"List continuous and diverging colormap names."`
	Apply     ApplyCmd     `cmd:"" help:"Apply a palette to every chart sink."`
	Browse    BrowseCmd    `cmd:"" help:"Browse palettes interactively."`
}
