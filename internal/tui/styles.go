// ABOUTME: Shared lipgloss styles for the setup wizard and the news viewer
// ABOUTME: Keeps colors for tabs, cards, and chrome in one place

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	focusTabStyle  = lipgloss.NewStyle().Reverse(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle        = lipgloss.NewStyle().Faint(true)
)
