package tracker

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Running  lipgloss.Style
	Complete lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Err      lipgloss.Style
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Complete: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Err:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
