package sinks

import (
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// Timeseries pushes a palette into the dataset styles of a single ntcharts
// timeseries line chart, one style per dataset in order, cycling through
// the palette when there are more datasets than colors.
type Timeseries struct {
	Chart    *timeserieslinechart.Model
	Datasets []string
}

// NewTimeseries binds a sink to a chart and the dataset names to style.
func NewTimeseries(chart *timeserieslinechart.Model, datasets ...string) *Timeseries {
	return &Timeseries{Chart: chart, Datasets: datasets}
}

func (s *Timeseries) Name() string {
	return "ntcharts"
}

func (s *Timeseries) Available() error {
	if s.Chart == nil {
		return &UnavailableError{Library: "ntcharts"}
	}
	return nil
}

func (s *Timeseries) Apply(colors []string) error {
	if err := s.Available(); err != nil {
		return err
	}
	if len(colors) == 0 {
		return nil
	}
	for i, dataset := range s.Datasets {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)]))
		s.Chart.SetDataSetStyle(dataset, style)
	}
	return nil
}
