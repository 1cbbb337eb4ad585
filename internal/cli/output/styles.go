package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header lipgloss.Style
	Name   lipgloss.Style
	Phone  lipgloss.Style
	Date   lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles creates styles bound to the given lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) Styles {
	return Styles{
		Header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Name:   lr.NewStyle().Bold(true),
		Phone:  lr.NewStyle().Foreground(lipgloss.Color("6")),
		Date:   lr.NewStyle().Foreground(lipgloss.Color("5")),
		Muted:  lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
