package sinks

import (
	"os"

	"github.com/KrOnAsK/swatch/internal/charts"
	"golang.org/x/term"
)

// Terminal installs a palette as the process-wide lipgloss series color
// cycle used by terminal chart rendering. It is unavailable when stdout is
// not a terminal, where styled output would degrade to bare text.
type Terminal struct{}

func (t *Terminal) Name() string {
	return "lipgloss"
}

func (t *Terminal) Available() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &UnavailableError{Library: "lipgloss"}
	}
	return nil
}

func (t *Terminal) Apply(colors []string) error {
	if err := t.Available(); err != nil {
		return err
	}
	charts.SetSeriesPalette(colors)
	return nil
}
