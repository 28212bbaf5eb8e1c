package commands

import (
	"fmt"
	"strings"

	"github.com/KrOnAsK/swatch/internal/palette"
)

type ColormapsCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

func (c *ColormapsCmd) Run(ctx *Context) error {
	switch c.Output {
	case "text":
		fmt.Printf("Continuous: %s\n", strings.Join(palette.ContinuousColormaps, ", "))
		fmt.Printf("Diverging:  %s\n", strings.Join(palette.DivergingColormaps, ", "))
	case "json":
		out, err := toJSON(massageColormaps())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := toYAML(massageColormaps())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func massageColormaps() map[string]interface{} {
	return map[string]interface{}{
		"continuous": palette.ContinuousColormaps,
		"diverging":  palette.DivergingColormaps,
	}
}
