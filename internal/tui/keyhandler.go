package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/kanban/internal/tui/msg"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// handleKeypress resolves a key through the keymap and runs its command.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, m.mode)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		m.teardown()
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeHelp
		return m, nil

	case keymap.CmdCloseHelp:
		m.mode = keymap.ModeNormal
		return m, nil

	case keymap.CmdReload:
		m.logger.Info("reloading tickets", "source", m.src.Describe())
		m.mount()
		return m, tea.Batch(m.spinner.Tick, tuimsg.Fetch(m.fetchCtx, m.src, m.gen))
	}

	// Everything below acts on a loaded board
	if m.ctrl.State() != board.StateReady {
		return m, nil
	}

	prefs := m.ctrl.Preferences()
	switch cmd {
	case keymap.CmdNextColumn:
		m.moveFocus(1)
	case keymap.CmdPrevColumn:
		m.moveFocus(-1)
	case keymap.CmdScrollDown:
		m.scrollTo(m.offset(m.focus) + 1)
	case keymap.CmdScrollUp:
		m.scrollTo(m.offset(m.focus) - 1)
	case keymap.CmdScrollToTop:
		m.scrollTo(0)
	case keymap.CmdScrollToBottom:
		m.scrollTo(m.maxOffset())

	case keymap.CmdCycleGroupBy:
		return m.setGroupBy(prefs.GroupBy.Next())
	case keymap.CmdCycleSortOrder:
		return m.setSortOrder(prefs.SortOrder.Next())
	case keymap.CmdGroupByStatus:
		return m.setGroupBy(ticket.GroupByStatus)
	case keymap.CmdGroupByUser:
		return m.setGroupBy(ticket.GroupByUser)
	case keymap.CmdGroupByPriority:
		return m.setGroupBy(ticket.GroupByPriority)
	case keymap.CmdSortByPriority:
		return m.setSortOrder(ticket.SortByPriority)
	case keymap.CmdSortByTitle:
		return m.setSortOrder(ticket.SortByTitle)
	}

	return m, nil
}

func (m Model) setGroupBy(g ticket.GroupBy) (tea.Model, tea.Cmd) {
	if g == m.ctrl.Preferences().GroupBy {
		return m, nil
	}
	err := m.ctrl.SetGroupBy(g)
	m.resetScroll(len(m.columns()))
	if err != nil {
		return m.setNotice("Preferences not saved: " + err.Error())
	}
	return m, nil
}

func (m Model) setSortOrder(o ticket.SortOrder) (tea.Model, tea.Cmd) {
	if o == m.ctrl.Preferences().SortOrder {
		return m, nil
	}
	err := m.ctrl.SetSortOrder(o)
	m.resetScroll(len(m.columns()))
	if err != nil {
		return m.setNotice("Preferences not saved: " + err.Error())
	}
	return m, nil
}

// setNotice shows text in the status line until a newer notice replaces it
// or noticeDuration passes.
func (m Model) setNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	return m, tuimsg.ClearNoticeAfter(noticeDuration, m.noticeSeq)
}

// boardLayout returns the column width, how many columns fit side by side,
// and the outer column height.
func (m Model) boardLayout(columns int) (colWidth, visible, height int) {
	colWidth = view.ColumnWidth(m.columnWidth, m.width, columns)
	visible = view.VisibleColumns(colWidth, m.width)
	height = BoardHeight(m.height)
	if visible < columns {
		height-- // ◀ ▶ line
	}
	return colWidth, visible, height
}

func (m *Model) moveFocus(delta int) {
	m.focus += delta
	m.ensureFocusVisible()
}

// ensureFocusVisible clamps focus to the columns and scrolls it into view.
func (m *Model) ensureFocusVisible() {
	n := len(m.columns())
	if n == 0 {
		m.focus, m.scrollX = 0, 0
		return
	}
	m.focus = max(0, min(m.focus, n-1))
	_, visible, _ := m.boardLayout(n)
	m.scrollX = view.ClampScroll(m.scrollX, m.focus, visible, n)
}

// scrollTo sets the first visible card of the focused column, clamped so
// the last page stays full.
func (m *Model) scrollTo(offset int) {
	m.setOffset(m.focus, max(0, min(offset, m.maxOffset())))
}

// maxOffset is the smallest offset of the focused column that still shows
// its last card.
func (m Model) maxOffset() int {
	cols := m.columns()
	if m.focus >= len(cols) {
		return 0
	}
	col := cols[m.focus]
	colWidth, _, height := m.boardLayout(len(cols))

	for o := range len(col.Tickets) {
		if o+view.CardsVisible(m.styles, col, colWidth, height, o, m.showTags) >= len(col.Tickets) {
			return o
		}
	}
	return max(0, len(col.Tickets)-1)
}
