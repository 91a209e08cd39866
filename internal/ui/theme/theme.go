package theme

import "github.com/charmbracelet/lipgloss"

// Muted e-ink palette. The launcher is about removing stimulation, so the
// TUI stays close to monochrome with a single warm accent.
var (
	Base     = lipgloss.Color("#14161a")
	Mantle   = lipgloss.Color("#0e1013")
	Surface0 = lipgloss.Color("#23262d")
	Surface1 = lipgloss.Color("#3a3f49")
	Text     = lipgloss.Color("#d8dde6")
	Subtext0 = lipgloss.Color("#8a9099")
	Ink      = lipgloss.Color("#b8c0cc")
	Accent   = lipgloss.Color("#e0af68")
	Calm     = lipgloss.Color("#9ece6a")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Ink)

	Title = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Calm)
)
