package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the forms readable on light and dark
// terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted   lipgloss.TerminalColor = ac("240", "243")
	colorAccent  lipgloss.TerminalColor = ac("27", "62")
	colorBorder  lipgloss.TerminalColor = ac("250", "240")
	colorError   lipgloss.TerminalColor = ac("160", "203")
	colorSuccess lipgloss.TerminalColor = ac("28", "114")
	colorPending lipgloss.TerminalColor = ac("130", "215")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(16)

	focusLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Width(16)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	activePanelStyle = panelStyle.BorderForeground(colorAccent)

	statusOKStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	pendingRowStyle = lipgloss.NewStyle().Foreground(colorPending)
)
