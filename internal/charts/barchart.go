package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// Barchart renders one horizontal bar per color, each styled with that
// color, bar length growing with its position in the palette.
func Barchart(colors []string, width int) string {
	barData := make([]barchart.BarData, 0)
	for i, color := range colors {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", color, i+1),
			Values: []barchart.BarValue{
				{Name: color, Value: float64(i + 1), Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color))},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
