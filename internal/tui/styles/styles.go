// Package styles holds the board's color themes and the lipgloss styles
// derived from them.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the set of lipgloss styles the board renders with, derived from
// one ColorPalette.
type Styles struct {
	Palette *ColorPalette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style
	ColumnCount   lipgloss.Style
	ColumnEmpty   lipgloss.Style
	Overflow      lipgloss.Style

	Card      lipgloss.Style
	CardID    lipgloss.Style
	CardTitle lipgloss.Style
	CardTag   lipgloss.Style

	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpBox  lipgloss.Style
}

// New builds Styles from a palette. A nil palette uses DefaultPalette.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginBottom(1),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		ColumnCount: lipgloss.NewStyle().
			Foreground(p.Secondary),
		ColumnEmpty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Align(lipgloss.Center),
		Overflow: lipgloss.NewStyle().
			Foreground(p.Muted).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Border).
			PaddingLeft(1).
			MarginBottom(1),
		CardID: lipgloss.NewStyle().
			Foreground(p.Muted),
		CardTitle: lipgloss.NewStyle().
			Foreground(p.Text),
		CardTag: lipgloss.NewStyle().
			Foreground(p.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
	}
}

// PriorityIcon returns a signal-bar glyph for a ticket priority.
func PriorityIcon(priority int) string {
	switch priority {
	case 4:
		return "!"
	case 3:
		return "▮▮▮"
	case 2:
		return "▮▮▯"
	case 1:
		return "▮▯▯"
	default:
		return "···"
	}
}

// Priority returns a style colored for the given ticket priority.
func (s *Styles) Priority(priority int) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(s.Palette.PriorityColor(priority))
	if priority == 4 {
		st = st.Bold(true)
	}
	return st
}
