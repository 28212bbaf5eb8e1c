package tui

import (
	"strings"

	"github.com/KrOnAsK/swatch/internal/palette"
	"github.com/charmbracelet/bubbles/textinput"
)

// ViewMode selects what the browser renders for the current palette.
type ViewMode int

const (
	ViewSwatch ViewMode = iota
	ViewChart
	ViewCSS
)

func (v ViewMode) String() string {
	switch v {
	case ViewSwatch:
		return "Swatch"
	case ViewChart:
		return "Chart"
	case ViewCSS:
		return "CSS"
	default:
		return "Unknown"
	}
}

// Model is the Bubble Tea model for the interactive palette browser.
type Model struct {
	names  []string
	index  int
	mode   ViewMode
	width  int
	height int

	filterTextInput textinput.Model
}

// New creates a browser starting on the named palette.
func New(initial string) (Model, error) {
	// validate before entering the event loop
	if _, err := palette.Colors(initial); err != nil {
		return Model{}, err
	}

	names := palette.Names()
	index := 0
	for i, name := range names {
		if name == initial {
			index = i
			break
		}
	}

	return Model{
		names:           names,
		index:           index,
		mode:            ViewSwatch,
		width:           80,
		filterTextInput: textinput.New(),
	}, nil
}

// visible returns the palette names matching the filter, or all names when
// the filter is empty.
func (m Model) visible() []string {
	query := strings.ToLower(strings.TrimSpace(m.filterTextInput.Value()))
	if query == "" {
		return m.names
	}
	matches := make([]string, 0, len(m.names))
	for _, name := range m.names {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Current returns the name of the selected palette, or "" when the filter
// matches nothing.
func (m Model) Current() string {
	visible := m.visible()
	if len(visible) == 0 {
		return ""
	}
	return visible[m.index%len(visible)]
}

func (m Model) clampIndex() Model {
	if n := len(m.visible()); n == 0 || m.index >= n {
		m.index = 0
	}
	return m
}

func (m Model) nextPalette() Model {
	if n := len(m.visible()); n > 0 {
		m.index = (m.index + 1) % n
	}
	return m
}

func (m Model) prevPalette() Model {
	if n := len(m.visible()); n > 0 {
		m.index = (m.index - 1 + n) % n
	}
	return m
}

func (m Model) nextMode() Model {
	m.mode = (m.mode + 1) % 3
	return m
}
