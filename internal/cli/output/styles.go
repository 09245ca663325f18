package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Bold      lipgloss.Style
	Header    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Muted     lipgloss.Style
	ClassName lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Bold:      r.NewStyle().Bold(true),
		Header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:     r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:      r.NewStyle().Foreground(lipgloss.Color("14")),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
		ClassName: r.NewStyle().Foreground(lipgloss.Color("13")),
	}
}
