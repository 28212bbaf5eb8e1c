package tables

import (
	"strconv"
	"strings"

	"github.com/KrOnAsK/swatch/internal/palette"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	teatable "github.com/evertras/bubble-table/table"
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// PaletteList builds a filterable table of the registered palettes.
func PaletteList() (Model, error) {
	return paletteModel()
}

func paletteModel() (Model, error) {
	names := palette.Names()
	longestName := 0
	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		colors, err := palette.Colors(name)
		if err != nil {
			return Model{}, err
		}
		if len(name) > longestName {
			longestName = len(name)
		}
		rows = append(rows, table.NewRow(table.RowData{
			"palette": name,
			"colors":  strconv.Itoa(len(colors)),
			"swatch":  swatchRow(colors),
		}))
	}

	columns := []table.Column{
		table.NewColumn("palette", "Palette", max(longestName+1, 8)).WithFiltered(true),
		table.NewColumn("colors", "Colors", 7),
		table.NewColumn("swatch", "Swatch", 20),
	}

	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}, nil
}

// swatchRow renders one block per color so the row previews the palette.
func swatchRow(colors []string) string {
	var b strings.Builder
	for _, color := range colors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(string(runes.FullBlock)))
	}
	return b.String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
