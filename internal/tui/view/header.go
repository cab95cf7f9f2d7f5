package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// HeaderState holds what the header line shows.
type HeaderState struct {
	Title     string
	GroupBy   ticket.GroupBy
	SortOrder ticket.SortOrder
	Tickets   int
	Columns   int
	Width     int
}

// RenderHeader renders the title with the active grouping and ordering on
// the left and the ticket count on the right.
func RenderHeader(s *styles.Styles, st HeaderState) string {
	title := st.Title
	if title == "" {
		title = "Kanban"
	}

	left := s.Title.Render(title) + "  " +
		s.Muted.Render("Grouping: ") + s.Subtitle.Render(st.GroupBy.Label()) + "  " +
		s.Muted.Render("Ordering: ") + s.Subtitle.Render(st.SortOrder.Label())
	right := s.Muted.Render(countLabel(st.Tickets, st.Columns))

	line := left
	if st.Width > 0 {
		gap := st.Width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap >= 2 {
			line = left + strings.Repeat(" ", gap) + right
		}
	} else {
		line = left + "  " + right
	}
	return s.Header.Render(line)
}

func countLabel(tickets, columns int) string {
	t := "tickets"
	if tickets == 1 {
		t = "ticket"
	}
	c := "columns"
	if columns == 1 {
		c = "column"
	}
	return fmt.Sprintf("%d %s in %d %s", tickets, t, columns, c)
}
