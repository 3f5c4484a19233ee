package tui

import (
	"pomoboard/internal/core/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	orange = lipgloss.Color("#FF9500")
	brown  = lipgloss.Color("#6B3D00")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(orange)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(brown).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0")).Padding(0, 1)
	clockStyle     = lipgloss.NewStyle().Bold(true).Foreground(orange).Padding(1, 0)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(orange)
	noticeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#34C759"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30"))
)

func barStyle(name model.Color) lipgloss.Style {
	switch name {
	case model.ColorGreen:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759"))
	case model.ColorOrange:
		return lipgloss.NewStyle().Foreground(orange)
	case model.ColorRed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))
	}
}
