package commands

import (
	"fmt"

	"github.com/KrOnAsK/swatch/internal/palette"
	"github.com/KrOnAsK/swatch/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
)

type ListCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (l *ListCmd) Run(ctx *Context) error {
	switch l.Output {
	case "table":
		m, err := tables.PaletteList()
		if err != nil {
			return err
		}
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}
	case "json":
		data, err := massagePalettes()
		if err != nil {
			return err
		}
		out, err := toJSON(data)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		data, err := massagePalettes()
		if err != nil {
			return err
		}
		out, err := toYAML(data)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func massagePalettes() ([]map[string]interface{}, error) {
	data := make([]map[string]interface{}, 0)
	for _, name := range palette.Names() {
		colors, err := palette.Colors(name)
		if err != nil {
			return nil, err
		}
		data = append(data, map[string]interface{}{
			"palette": name,
			"colors":  colors,
		})
	}
	return data, nil
}
