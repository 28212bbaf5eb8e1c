package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for demo chart height.
	MinChartHeight = 8

	// DefaultWidth is used when the terminal size cannot be determined.
	DefaultWidth = 80

	// DemoSamples is the number of points per series in the demo line chart.
	DemoSamples = 60
)
