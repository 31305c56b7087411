package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/menu/internal/model"
)

// ------- styling helpers (Lip Gloss) -------
var (
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)

	statsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Reverse(true).Bold(true)

	courseStyles = map[model.Course]lipgloss.Style{
		model.Starter: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("71")),
		model.Main:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		model.Dessert: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("176")),
	}
)

func courseStyle(c model.Course) lipgloss.Style {
	if s, ok := courseStyles[c]; ok {
		return s
	}
	return accentStyle
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
