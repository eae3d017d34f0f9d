// Package common provides shared styles for the terminal output.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/special-hands/internal/game/card"
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	JokerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A2BE2")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	ScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
)

// CardStyle picks the face style for a card.
func CardStyle(c card.Card) lipgloss.Style {
	switch {
	case c.IsJoker():
		return JokerStyle
	case c.Color() == card.Red:
		return RedStyle
	default:
		return BlackStyle
	}
}
