package tui

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	helpBar := view.RenderHelpBar(m.styles, m.keymap, m.mode, m.width)
	if m.mode == keymap.ModeHelp {
		return view.RenderHelp(m.styles, m.keymap, m.width, m.height-HelpBarHeight) + "\n" + helpBar
	}

	cols := m.columns()
	prefs := m.ctrl.Preferences()
	height := BoardHeight(m.height)

	var b strings.Builder
	b.WriteString(view.RenderHeader(m.styles, view.HeaderState{
		Title:     m.title,
		GroupBy:   prefs.GroupBy,
		SortOrder: prefs.SortOrder,
		Tickets:   m.ctrl.TicketCount(),
		Columns:   len(cols),
		Width:     m.width,
	}))
	b.WriteString("\n")

	switch {
	case m.ctrl.State() == board.StateReady:
		b.WriteString(view.RenderBoard(m.styles, view.BoardState{
			Columns:     cols,
			Focus:       m.focus,
			ScrollX:     m.scrollX,
			Offsets:     m.offsets,
			Width:       m.width,
			Height:      height,
			ColumnWidth: m.columnWidth,
			ShowTags:    m.showTags,
		}))
	case m.ctrl.Err() != nil:
		b.WriteString(view.RenderFailed(m.styles, m.ctrl.Err(), m.width, height))
	default:
		b.WriteString(view.RenderLoading(m.styles, m.spinner.View(), m.src.Describe(), m.width, height))
	}
	b.WriteString("\n")

	b.WriteString(view.RenderStatus(m.styles, view.StatusState{
		Loading: m.ctrl.State() == board.StateLoading,
		Spinner: m.spinner.View(),
		Source:  m.src.Describe(),
		Err:     m.ctrl.Err(),
		Notice:  m.notice,
		Width:   m.width,
	}))
	b.WriteString("\n")
	b.WriteString(helpBar)

	return b.String()
}
