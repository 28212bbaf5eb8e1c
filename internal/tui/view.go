package tui

import (
	"fmt"
	"strings"

	"github.com/KrOnAsK/swatch/internal/charts"
	"github.com/KrOnAsK/swatch/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	// Filter input, shown while filtering
	if m.filterTextInput.Focused() || m.filterTextInput.Value() != "" {
		s.WriteString(fmt.Sprintf("  Filter: %s\n", m.filterTextInput.View()))
	}
	s.WriteString("\n")

	// Palette body
	s.WriteString(m.renderBody())
	s.WriteString("\n")

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	modeStyle := lipgloss.NewStyle().Bold(true)
	swatchStyle := modeStyle
	chartStyle := modeStyle
	cssStyle := modeStyle

	activeStyle := modeStyle.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))

	switch m.mode {
	case ViewSwatch:
		swatchStyle = activeStyle
	case ViewChart:
		chartStyle = activeStyle
	case ViewCSS:
		cssStyle = activeStyle
	}

	modeText := fmt.Sprintf("  View: %s | %s | %s",
		swatchStyle.Render(" Swatch "),
		chartStyle.Render(" Chart "),
		cssStyle.Render(" CSS "))

	paletteText := "   Palette: none"
	if visible := m.visible(); len(visible) > 0 {
		paletteText = fmt.Sprintf("   Palette: %s (%d/%d)",
			TitleStyle.Render(m.Current()), m.index+1, len(visible))
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	return statusStyle.Render(modeText + paletteText)
}

func (m Model) renderBody() string {
	current := m.Current()
	if current == "" {
		return WarningStyle.Render(fmt.Sprintf("  No palettes match %q", m.filterTextInput.Value()))
	}

	colors, err := palette.Colors(current)
	if err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
	}

	switch m.mode {
	case ViewChart:
		width := m.width - 4
		if width < 20 {
			width = 20
		}
		charts.SetSeriesPalette(colors)
		chart, legend := charts.Demo(len(colors), width)
		return chart + legend
	case ViewCSS:
		css, err := palette.CSSVariables(current, "color")
		if err != nil {
			return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
		}
		return css
	default:
		return charts.Swatches(colors)
	}
}

func (m Model) renderHelpBar() string {
	return HelpStyle.Render("\n  tab/←→: switch palette   v/1-3: switch view   /: filter   q: quit")
}
