package ui

import "github.com/charmbracelet/lipgloss"

var (
	nord3  = lipgloss.Color("#4C566A")
	nord4  = lipgloss.Color("#D8DEE9")
	nord8  = lipgloss.Color("#88C0D0")
	nord9  = lipgloss.Color("#81A1C1")
	nord11 = lipgloss.Color("#BF616A")
	nord13 = lipgloss.Color("#EBCB8B")
	nord14 = lipgloss.Color("#A3BE8C")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(nord8)
	headerStyle  = lipgloss.NewStyle().Foreground(nord9)
	focusStyle   = lipgloss.NewStyle().Foreground(nord13).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(nord3)
	textStyle    = lipgloss.NewStyle().Foreground(nord4)
	syncedStyle  = lipgloss.NewStyle().Foreground(nord14)
	pendingStyle = lipgloss.NewStyle().Foreground(nord13)
	errorStyle   = lipgloss.NewStyle().Foreground(nord11)
	pickerStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(nord9).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)
