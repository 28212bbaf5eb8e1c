package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// keys go to the filter while it is focused
	if m.filterTextInput.Focused() {
		switch msg.String() {
		case "enter":
			m.filterTextInput.Blur()
			return m, nil
		case "esc":
			m.filterTextInput.Blur()
			m.filterTextInput.SetValue("")
			return m.clampIndex(), nil
		default:
			var cmd tea.Cmd
			m.filterTextInput, cmd = m.filterTextInput.Update(msg)
			return m.clampIndex(), cmd
		}
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.filterTextInput.Focus()
		return m, textinput.Blink
	case "tab", "right", "l", "n":
		return m.nextPalette(), nil
	case "shift+tab", "left", "h", "p":
		return m.prevPalette(), nil
	case "v", " ", "enter":
		return m.nextMode(), nil
	case "1":
		m.mode = ViewSwatch
		return m, nil
	case "2":
		m.mode = ViewChart
		return m, nil
	case "3":
		m.mode = ViewCSS
		return m, nil
	}

	return m, nil
}
