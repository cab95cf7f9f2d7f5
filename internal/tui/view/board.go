package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
)

// Column width bounds used when the width is fitted to the terminal.
const (
	MinColumnWidth = 24
	MaxColumnWidth = 40

	columnGap = 1
	// border + column header line + blank line under it
	columnChrome = 4
)

// BoardState is everything RenderBoard needs besides styles.
type BoardState struct {
	Columns []board.Column

	// Focus is the focused column index; -1 renders no focus.
	Focus int
	// ScrollX is the first visible column when the board scrolls sideways.
	ScrollX int
	// Offsets holds the first visible card per column. Missing entries are 0.
	Offsets []int

	Width  int
	Height int // 0 renders every card

	// ColumnWidth is the configured width; 0 fits the columns to Width.
	ColumnWidth int
	ShowTags    bool

	// Wrap lays columns that do not fit onto additional rows instead of
	// scrolling sideways.
	Wrap bool
}

// ColumnWidth resolves the outer width of one column.
func ColumnWidth(configured, width, columns int) int {
	if configured > 0 {
		return configured
	}
	if columns <= 0 || width <= 0 {
		return MaxColumnWidth
	}
	w := (width - columnGap*(columns-1)) / columns
	return max(MinColumnWidth, min(MaxColumnWidth, w))
}

// VisibleColumns returns how many columns of colWidth fit in width. It is
// always at least 1.
func VisibleColumns(colWidth, width int) int {
	if width <= 0 || colWidth <= 0 {
		return 1
	}
	return max(1, (width+columnGap)/(colWidth+columnGap))
}

// ClampScroll moves the first visible column the least amount needed to keep
// focus inside a window of visible columns.
func ClampScroll(scroll, focus, visible, total int) int {
	if total <= visible {
		return 0
	}
	if focus >= 0 {
		if focus < scroll {
			scroll = focus
		}
		if focus >= scroll+visible {
			scroll = focus - visible + 1
		}
	}
	return max(0, min(scroll, total-visible))
}

// CardsVisible reports how many cards of col fit in a column of the given
// outer height starting at offset. Height 0 fits every card.
func CardsVisible(s *styles.Styles, col board.Column, colWidth, height, offset int, showTags bool) int {
	_, shown := columnBody(s, col, colWidth, height, offset, showTags)
	return shown
}

// RenderBoard renders the columns side by side.
func RenderBoard(s *styles.Styles, st BoardState) string {
	if len(st.Columns) == 0 {
		return RenderEmpty(s, st.Width, st.Height)
	}

	colWidth := ColumnWidth(st.ColumnWidth, st.Width, len(st.Columns))
	visible := len(st.Columns)
	if st.Width > 0 {
		visible = min(visible, VisibleColumns(colWidth, st.Width))
	}

	if st.Wrap {
		var rows []string
		for start := 0; start < len(st.Columns); start += visible {
			end := min(start+visible, len(st.Columns))
			rows = append(rows, renderRow(s, st, start, end, colWidth))
		}
		return strings.Join(rows, "\n")
	}

	start := ClampScroll(st.ScrollX, st.Focus, visible, len(st.Columns))
	end := min(start+visible, len(st.Columns))
	row := renderRow(s, st, start, end, colWidth)

	if start == 0 && end == len(st.Columns) {
		return row
	}

	var left, right string
	if start > 0 {
		left = s.Overflow.Render(fmt.Sprintf("◀ %d", start))
	}
	if end < len(st.Columns) {
		right = s.Overflow.Render(fmt.Sprintf("%d ▶", len(st.Columns)-end))
	}
	gap := st.Width - lipgloss.Width(left) - lipgloss.Width(right)
	indicator := left + strings.Repeat(" ", max(1, gap)) + right
	return lipgloss.JoinVertical(lipgloss.Left, row, indicator)
}

func renderRow(s *styles.Styles, st BoardState, start, end, colWidth int) string {
	height := st.Height
	if height > 0 && !st.Wrap && end-start < len(st.Columns) {
		height-- // room for the ◀ ▶ line
	}

	cols := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		offset := 0
		if i < len(st.Offsets) {
			offset = st.Offsets[i]
		}
		cols = append(cols, RenderColumn(s, st.Columns[i], colWidth, height, offset, i == st.Focus, st.ShowTags))
		if i < end-1 {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderColumn renders one column of the given outer width. Height 0 grows
// the column to fit every card.
func RenderColumn(s *styles.Styles, col board.Column, width, height, offset int, focused, showTags bool) string {
	style := s.Column
	if focused {
		style = s.ColumnFocused
	}
	// lipgloss widths include padding but not the border
	style = style.Width(width - 2)
	if height > 0 {
		style = style.Height(height - 2).MaxHeight(height)
	}

	inner := width - 4
	title := s.ColumnTitle.Render(util.TruncateANSI(col.Label, inner-6))
	count := s.ColumnCount.Render(fmt.Sprintf("%d", len(col.Tickets)))
	header := title + strings.Repeat(" ", max(1, inner-lipgloss.Width(title)-lipgloss.Width(count))) + count

	body, _ := columnBody(s, col, width, height, offset, showTags)
	return style.Render(header + "\n\n" + body)
}

func columnBody(s *styles.Styles, col board.Column, width, height, offset int, showTags bool) (string, int) {
	inner := width - 4
	if len(col.Tickets) == 0 {
		return s.ColumnEmpty.Width(inner).Render("No tickets"), 0
	}
	offset = max(0, min(offset, len(col.Tickets)-1))

	var lines []string
	if offset > 0 {
		lines = append(lines, s.Overflow.Width(inner).Render(fmt.Sprintf("▲ %d more", offset)))
	}

	avail := height - columnChrome - len(lines)
	used, shown := 0, 0
	for i := offset; i < len(col.Tickets); i++ {
		card := RenderCard(s, col.Tickets[i], inner, showTags)
		h := lipgloss.Height(card)
		if height > 0 && shown > 0 {
			reserve := 0
			if i < len(col.Tickets)-1 {
				reserve = 1
			}
			if used+h+reserve > avail {
				break
			}
		}
		lines = append(lines, card)
		used += h
		shown++
	}

	if rest := len(col.Tickets) - offset - shown; rest > 0 {
		lines = append(lines, s.Overflow.Width(inner).Render(fmt.Sprintf("▼ %d more", rest)))
	}
	return strings.Join(lines, "\n"), shown
}

// RenderEmpty renders the board when there are no columns.
func RenderEmpty(s *styles.Styles, width, height int) string {
	msg := s.Muted.Render("No tickets to show")
	if width <= 0 || height <= 0 {
		return msg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
