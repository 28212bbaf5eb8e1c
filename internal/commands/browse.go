package commands

import (
	"github.com/KrOnAsK/swatch/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type BrowseCmd struct {
	Name string `arg:"" name:"name" optional:"" help:"Palette to start on." default:"okabe_ito"`
}

func (b *BrowseCmd) Run(ctx *Context) error {
	m, err := tui.New(b.Name)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
