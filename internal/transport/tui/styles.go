package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorWinner  = lipgloss.Color("2")
	colorCursor  = lipgloss.Color("4")
	colorMuted   = lipgloss.Color("8")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	displayStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	cellStyle       = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted)
	cursorCellStyle = cellStyle.BorderForeground(colorCursor)
	winnerCellStyle = lipgloss.NewStyle().Background(colorWinner)
)

// namedColors maps the color names players are usually configured with onto ANSI codes.
// Anything else (hex values, numbers) is passed to lipgloss as is.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"orange":  "208",
}

func playerColor(color string) lipgloss.TerminalColor {
	if color == "" {
		return lipgloss.NoColor{}
	}

	if code, ok := namedColors[color]; ok {
		return lipgloss.Color(code)
	}

	return lipgloss.Color(color)
}
