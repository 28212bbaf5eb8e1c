package charts

import (
	"os"

	"github.com/KrOnAsK/swatch/internal/palette"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// seriesPalette is the process-wide color cycle used when rendering charts.
// It defaults to Paul Tol's vibrant palette (no black, visible on dark
// backgrounds) and is replaced wholesale by SetSeriesPalette.
var seriesPalette = mustColors("paul_tol_vibrant")

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

func mustColors(name string) []string {
	colors, err := palette.Colors(name)
	if err != nil {
		panic(err)
	}
	return colors
}

// SetSeriesPalette replaces the color cycle used for chart series. Empty
// palettes are ignored.
func SetSeriesPalette(colors []string) {
	if len(colors) == 0 {
		return
	}
	next := make([]string, len(colors))
	copy(next, colors)
	seriesPalette = next
}

// SeriesPalette returns a copy of the current chart color cycle.
func SeriesPalette() []string {
	colors := make([]string, len(seriesPalette))
	copy(colors, seriesPalette)
	return colors
}

// SeriesColor returns the color for a given series index, cycling through
// the palette in both directions so any int is a valid index.
func SeriesColor(index int) lipgloss.Color {
	i := index % len(seriesPalette)
	if i < 0 {
		i += len(seriesPalette)
	}
	return lipgloss.Color(seriesPalette[i])
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}

// Width returns the rendering width: the override if positive, the terminal
// width when stdout is a terminal, else DefaultWidth.
func Width(override int) int {
	if override > 0 {
		return override
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
