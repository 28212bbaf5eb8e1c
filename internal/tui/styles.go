package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared styles used across browser views.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
