package commands

import (
	"encoding/json"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"
)

// Shared styles used across command output.
var (
	OkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func toJSON(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func toYAML(data interface{}) ([]byte, error) {
	return yaml.Marshal(data)
}
