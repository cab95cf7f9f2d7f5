package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
)

// maxTitleLines caps how many lines a card title wraps onto.
const maxTitleLines = 2

// RenderCard renders one ticket at the given outer width: the id with a
// priority marker, the wrapped title, and optionally the tags.
func RenderCard(s *styles.Styles, t ticket.Ticket, width int, showTags bool) string {
	// left border + padding
	inner := max(1, width-2)

	icon := s.Priority(t.Priority).Render(styles.PriorityIcon(t.Priority))
	idWidth := inner - lipgloss.Width(icon) - 1
	id := s.CardID.Render(util.TruncateANSI(t.ID, idWidth))
	lines := []string{util.PadRight(id, inner-lipgloss.Width(icon)) + icon}

	for _, line := range util.WrapLines(t.Title, inner, maxTitleLines) {
		lines = append(lines, s.CardTitle.Render(line))
	}

	if showTags && len(t.Tag) > 0 {
		lines = append(lines, s.CardTag.Render(util.TruncateANSI("● "+t.Tag.String(), inner)))
	}

	return s.Card.Width(width - 1).Render(strings.Join(lines, "\n"))
}
