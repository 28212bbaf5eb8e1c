package commands

import (
	"fmt"

	"github.com/KrOnAsK/swatch/internal/charts"
	"github.com/KrOnAsK/swatch/internal/palette"
)

type ShowCmd struct {
	Name   string `arg:"" name:"name" help:"Palette to show." required:""`
	N      int    `name:"n" short:"n" help:"Number of colors to show; cycles when larger than the palette." default:"-1"`
	Output string `name:"output" short:"o" help:"Output format." default:"swatch" enum:"swatch,chart,barchart,json,yaml"`
}

func (s *ShowCmd) Run(ctx *Context) error {
	colors, err := s.resolve()
	if err != nil {
		return err
	}

	switch s.Output {
	case "swatch":
		fmt.Println(charts.Swatches(colors))
	case "chart":
		charts.SetSeriesPalette(colors)
		chart, legend := charts.Demo(len(colors), charts.Width(ctx.Width))
		fmt.Println(chart)
		fmt.Println(legend)
	case "barchart":
		fmt.Println(charts.Barchart(colors, charts.Width(ctx.Width)))
	case "json":
		out, err := toJSON(map[string]interface{}{"palette": s.Name, "colors": colors})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := toYAML(map[string]interface{}{"palette": s.Name, "colors": colors})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func (s *ShowCmd) resolve() ([]string, error) {
	if s.N < 0 {
		return palette.Colors(s.Name)
	}
	return palette.ColorsN(s.Name, s.N)
}
