package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"
)

// swatchWidth is how many block runes each swatch row shows.
const swatchWidth = 6

// Swatches renders one row per color: a block of the color followed by its
// hex value.
func Swatches(colors []string) string {
	var b strings.Builder
	block := strings.Repeat(string(runes.FullBlock), swatchWidth)
	for i, color := range colors {
		if i > 0 {
			b.WriteString("\n")
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(block))
		b.WriteString(fmt.Sprintf(" %s", color))
	}
	return b.String()
}
