package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the session view.
type Styles struct {
	Title       lipgloss.Style
	ArticleInfo lipgloss.Style
	Question    lipgloss.Style
	Answer      lipgloss.Style
	NoAnswer    lipgloss.Style
	Error       lipgloss.Style
	Spinner     lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		ArticleInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1),
		Question: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		Answer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1),
		NoAnswer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
	}
}
