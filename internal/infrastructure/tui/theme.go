package tui

import "github.com/charmbracelet/lipgloss"

// The palette keeps the cold cockpit look: cyan instrument glow on black,
// grey body text, amber for alerts.
var (
	colorAccent = lipgloss.Color("#27E6EC")
	colorText   = lipgloss.Color("#BABABA")
	colorFaint  = lipgloss.Color("#646464")
	colorAlert  = lipgloss.Color("#FF8C00")
	colorInput  = lipgloss.Color("#7E97AE")
	colorItem   = lipgloss.Color("#BEA5CD")
	colorBorder = lipgloss.Color("#6496C8")
	colorFlash  = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(colorText)

	faintStyle = lipgloss.NewStyle().
			Foreground(colorFaint)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	alertStyle = lipgloss.NewStyle().
			Foreground(colorAlert)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorInput)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorItem)

	clockStyle = lipgloss.NewStyle().
			Foreground(colorFaint)

	clockFlashStyle = lipgloss.NewStyle().
			Foreground(colorFlash).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)
