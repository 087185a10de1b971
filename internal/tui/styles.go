package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText        = lipgloss.Color("#333333")
	colorMuted       = lipgloss.Color("#8A8A8A")
	colorDestructive = lipgloss.Color("#CC0000")
	colorAccent      = lipgloss.Color("#2196F3")
	colorCard        = lipgloss.Color("#FFFFFF")
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title          lipgloss.Style
	Header         lipgloss.Style
	Placeholder    lipgloss.Style
	Row            lipgloss.Style
	SelectedRow    lipgloss.Style
	CompletedText  lipgloss.Style
	Delete         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Status         lipgloss.Style
	Footer         lipgloss.Style
}

// DefaultStyles returns the standard styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorCard).
			Padding(0, 2).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginTop(1),
		Placeholder:    lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2),
		Row:            lipgloss.NewStyle().PaddingLeft(2),
		SelectedRow:    lipgloss.NewStyle().PaddingLeft(0).Foreground(colorAccent).Bold(true),
		CompletedText:  lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true),
		Delete:         lipgloss.NewStyle().Foreground(colorDestructive),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ButtonDisabled: lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
		Status:         lipgloss.NewStyle().Foreground(colorMuted).Italic(true).MarginTop(1),
		Footer:         lipgloss.NewStyle().Foreground(colorMuted),
	}
}
