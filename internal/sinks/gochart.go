package sinks

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// fillAlpha is the alpha applied to series fill colors.
const fillAlpha = 64

// defaultSeriesStyles is the process-wide default go-chart series styling,
// empty until a palette is applied.
var defaultSeriesStyles []chart.Style

// GoChart installs a palette as the default go-chart series styles. go-chart
// renders to image buffers, so it needs no terminal and is always available.
type GoChart struct{}

func (g *GoChart) Name() string {
	return "go-chart"
}

func (g *GoChart) Available() error {
	return nil
}

func (g *GoChart) Apply(colors []string) error {
	defaultSeriesStyles = SeriesStyles(colors)
	return nil
}

// DefaultSeriesStyles returns a copy of the go-chart series styles installed
// by the last Apply, or nil if none has been applied.
func DefaultSeriesStyles() []chart.Style {
	if defaultSeriesStyles == nil {
		return nil
	}
	styles := make([]chart.Style, len(defaultSeriesStyles))
	copy(styles, defaultSeriesStyles)
	return styles
}

// SeriesStyles converts a color sequence into go-chart series styles, one
// per color, with a solid stroke and a translucent fill.
func SeriesStyles(colors []string) []chart.Style {
	styles := make([]chart.Style, len(colors))
	for i, color := range colors {
		c := drawing.ColorFromHex(strings.TrimPrefix(color, "#"))
		styles[i] = chart.Style{
			StrokeColor: c,
			FillColor:   c.WithAlpha(fillAlpha),
		}
	}
	return styles
}
