package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#11111b")
	Surface  = lipgloss.Color("#313244")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext  = lipgloss.Color("#a6adc8")
	Accent   = lipgloss.Color("#89b4fa")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Progress = lipgloss.Color("#94e2d5")

	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Padding(0, 1)

	BanStrip = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Bold(true).
			Padding(0, 1)

	Bar = lipgloss.NewStyle().Foreground(Progress).Background(Base)

	Title = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext)
	Good  = lipgloss.NewStyle().Foreground(Green)
	Warn  = lipgloss.NewStyle().Foreground(Yellow)
)
