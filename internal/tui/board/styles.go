package board

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorDanger  = lipgloss.Color("196") // red
	colorSuccess = lipgloss.Color("76")  // green
	colorInfo    = lipgloss.Color("39")  // blue
	colorMuted   = lipgloss.Color("242") // gray
	colorWhite   = lipgloss.Color("15")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	clashStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Badge styles keyed by timeline.WorkerStatus.Style()
	badgeStyles = map[string]lipgloss.Style{
		"muted":   lipgloss.NewStyle().Foreground(colorMuted),
		"danger":  lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		"success": lipgloss.NewStyle().Foreground(colorSuccess),
		"info":    lipgloss.NewStyle().Foreground(colorInfo),
	}
)

func badge(style, label string) string {
	s, ok := badgeStyles[style]
	if !ok {
		s = badgeStyles["info"]
	}
	return s.Render(label)
}

// cellStyle colours a filled grid cell; hex is a stage colour like "#2563eb".
func cellStyle(hex string) lipgloss.Style {
	if hex == "" {
		return mutedStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
