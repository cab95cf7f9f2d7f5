package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/board"
	tuimsg "github.com/Iron-Ham/kanban/internal/tui/msg"
)

// noticeDuration is how long a status notice stays on screen.
const noticeDuration = 4 * time.Second

// Init starts the first fetch, the spinner and the preferences watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tuimsg.Fetch(m.fetchCtx, m.src, m.gen),
		tuimsg.StartWatch(m.ctx, m.watcher),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureFocusVisible()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once there is nothing to wait for
		if m.ctrl.State() != board.StateLoading || m.ctrl.Err() != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tuimsg.FetchedMsg:
		if !m.ctrl.Resolve(msg.Gen, msg.Dataset, msg.Err) {
			return m, nil
		}
		if msg.Err == nil {
			m.resetScroll(len(m.columns()))
		}
		return m, nil

	case tuimsg.WatchStartedMsg:
		m.prefsCh = msg.Ch
		return m, tuimsg.WaitForPrefs(m.prefsCh)

	case tuimsg.PrefsChangedMsg:
		if m.ctrl.ApplyExternal(msg.Prefs) {
			m.resetScroll(len(m.columns()))
		}
		return m, tuimsg.WaitForPrefs(m.prefsCh)

	case tuimsg.WatchClosedMsg:
		m.logger.Debug("preferences watch closed")
		m.prefsCh = nil
		return m, nil

	case tuimsg.ErrMsg:
		m.logger.Warn("background error", "error", msg.Err)
		return m.setNotice(msg.Err.Error())

	case tuimsg.ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}
