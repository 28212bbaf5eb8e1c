package palette

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// okabeIto is the Okabe-Ito categorical palette, designed for colorblind accessibility.
// See: https://jfly.uni-koeln.de/color/
var okabeIto = []string{
	"#E69F00", // Orange
	"#56B4E9", // Sky Blue
	"#009E73", // Bluish Green
	"#F0E442", // Yellow
	"#0072B2", // Blue
	"#D55E00", // Vermillion
	"#CC79A7", // Reddish Purple
	"#000000", // Black
}

// colorbrewerDark2 is the ColorBrewer Dark2 qualitative palette.
// See: https://colorbrewer2.org/
var colorbrewerDark2 = []string{
	"#1B9E77", // Teal
	"#D95F02", // Orange
	"#7570B3", // Purple
	"#E7298A", // Magenta
	"#66A61E", // Green
	"#E6AB02", // Yellow
	"#A6761D", // Brown
	"#666666", // Gray
}

// paulTolVibrant is Paul Tol's vibrant qualitative palette.
// See: https://personal.sron.nl/~pault/
var paulTolVibrant = []string{
	"#EE7733", // Orange
	"#0077BB", // Blue
	"#33BBEE", // Cyan
	"#EE3377", // Magenta
	"#CC3311", // Red
	"#009988", // Teal
	"#BBBBBB", // Grey
}

// paulTolMuted is Paul Tol's muted qualitative palette.
// See: https://personal.sron.nl/~pault/
var paulTolMuted = []string{
	"#CC6677", // Rose
	"#332288", // Indigo
	"#DDCC77", // Sand
	"#117733", // Green
	"#88CCEE", // Cyan
	"#882255", // Wine
	"#44AA99", // Teal
	"#999933", // Olive
	"#AA4499", // Purple
}

// registry maps palette names to their color sequences. Populated once
// here, read-only afterwards; accessors hand out copies.
var registry = map[string][]string{
	"okabe_ito":         okabeIto,
	"colorbrewer_dark2": colorbrewerDark2,
	"paul_tol_vibrant":  paulTolVibrant,
	"paul_tol_muted":    paulTolMuted,
}

// ContinuousColormaps lists the colorblind-friendly sequential colormap
// names recognized by downstream chart libraries. The gradients themselves
// live in those libraries; this is an allow-list only.
var ContinuousColormaps = []string{
	"viridis",
	"plasma",
	"inferno",
	"magma",
	"cividis",
	"blues",
	"oranges",
	"purples",
}

// DivergingColormaps lists the colorblind-friendly diverging colormap names.
var DivergingColormaps = []string{
	"BrBG",
	"PuOr",
	"coolwarm",
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns a copy of the full color sequence for the named palette.
func Colors(name string) ([]string, error) {
	p, ok := registry[name]
	if !ok {
		return nil, &UnknownPaletteError{Name: name, Valid: Names()}
	}
	colors := make([]string, len(p))
	copy(colors, p)
	return colors, nil
}

// ColorsN returns exactly n colors from the named palette, truncating when
// n is smaller than the palette and cycling from the start when it is
// larger. n <= 0 yields an empty sequence.
func ColorsN(name string, n int) ([]string, error) {
	p, ok := registry[name]
	if !ok {
		return nil, &UnknownPaletteError{Name: name, Valid: Names()}
	}
	if n <= 0 {
		return []string{}, nil
	}
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = p[i%len(p)]
	}
	return colors, nil
}

// Continuous validates name against the continuous colormap allow-list and
// returns it unchanged.
func Continuous(name string) (string, error) {
	for _, cmap := range ContinuousColormaps {
		if name == cmap {
			return name, nil
		}
	}
	return "", &UnknownColormapError{Name: name, Valid: ContinuousColormaps}
}

// Color returns the color at index for the named palette, cycling through
// the palette in both directions so any int is a valid index.
func Color(name string, index int) (lipgloss.Color, error) {
	p, ok := registry[name]
	if !ok {
		return "", &UnknownPaletteError{Name: name, Valid: Names()}
	}
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return lipgloss.Color(p[i]), nil
}

// Style returns a lipgloss style with the foreground color at index for the
// named palette, cycling like Color.
func Style(name string, index int) (lipgloss.Style, error) {
	c, err := Color(name, index)
	if err != nil {
		return lipgloss.Style{}, err
	}
	return lipgloss.NewStyle().Foreground(c), nil
}
