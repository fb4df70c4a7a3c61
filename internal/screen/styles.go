package screen

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for text drawn over the playfield.
type Styles struct {
	HUD     lipgloss.Style
	Title   lipgloss.Style
	Message lipgloss.Style
}

// DefaultStyles builds the styles on r, which decides the color profile
// of the output (a local terminal or an SSH session).
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		HUD: r.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		Title: r.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Message: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2).
			Align(lipgloss.Center),
	}
}
