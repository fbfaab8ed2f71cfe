package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	RepoHeader  lipgloss.Style
	AdrRow      lipgloss.Style
	AdrLocal    lipgloss.Style
	Highlight   lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	ModeBadge   lipgloss.Style
	ListPane    lipgloss.Style
	EditorPane  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		RepoHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		AdrRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		AdrLocal: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // locally created, not pushed
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ModeBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")).
			Padding(0, 1),
		ListPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("241")).
			PaddingRight(1),
		EditorPane: lipgloss.NewStyle().PaddingLeft(1),
	}
}
