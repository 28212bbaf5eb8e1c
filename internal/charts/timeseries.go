package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// Demo returns a braille line chart and its legend separately. It draws
// numSeries phase-shifted sine series, each styled from the installed
// series color cycle, stacked vertically so every color stays visible.
func Demo(numSeries int, width int) (chart string, legend string) {
	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	minYValue := -1.2
	maxYValue := float64(numSeries-1)*1.5 + 1.2
	if maxYValue <= minYValue {
		maxYValue = 1.2
	}

	var legendBuilder strings.Builder

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minYValue, maxYValue)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(minYValue, maxYValue) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)   // ThinLineStyle replaces default linechart arcline rune style

	start := time.Now().Add(-time.Duration(DemoSamples) * time.Minute)
	for i := 0; i < numSeries; i++ {
		name := DemoSeriesName(i)
		color := SeriesColor(i)
		style := SeriesStyle(i)
		legendBuilder.WriteString("\n")
		legendBuilder.WriteString(style.Render(fmt.Sprintf("%c %s %s", runes.FullBlock, name, color)))
		lc.SetDataSetStyle(name, style)
		for s := 0; s < DemoSamples; s++ {
			x := float64(s) / float64(DemoSamples) * 4 * math.Pi
			point := timeserieslinechart.TimePoint{
				Time:  start.Add(time.Duration(s) * time.Minute),
				Value: math.Sin(x+float64(i)*math.Pi/4) + float64(i)*1.5,
			}
			lc.PushDataSet(name, point)
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legendBuilder.String()
}

// DemoSeriesName is the dataset name for the i-th demo series.
func DemoSeriesName(i int) string {
	return fmt.Sprintf("series-%d", i+1)
}
