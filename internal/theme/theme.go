package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title  *lipgloss.Style
	Bezel  *lipgloss.Style
	Cells  *lipgloss.Style
	Pixels *lipgloss.Style
	Idle   *lipgloss.Style
	Screen *lipgloss.Style
	Status *lipgloss.Style
	Error  *lipgloss.Style
	Footer *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Bezel: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	),
	Cells: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("113")),
	),
	Pixels: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Background(lipgloss.Color("0")),
	),
	Idle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("107")),
	),
	Screen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("179")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
