// Package tui implements the Bubble Tea interface for tracker.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the task list view.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Done     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles builds the style set for the given accent color.
// Completion is rendered purely as styling: the strikethrough is derived
// from the task's done flag and carries no state of its own.
func DefaultStyles(accent string) Styles {
	accentColor := lipgloss.Color(accent)
	muted := lipgloss.Color("243")

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Text:     lipgloss.NewStyle(),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		Cursor:   lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(accentColor),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}
