package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/kanban/internal/tui/msg"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// Options configures a Model.
type Options struct {
	Controller *board.Controller
	Source     source.Source

	// Watcher, when set, delivers preferences changed by other processes.
	Watcher tuimsg.PrefsWatcher

	Styles *styles.Styles
	Keymap *keymap.Keymap
	Logger *logging.Logger

	Title       string
	ColumnWidth int
	ShowTags    bool
}

// Model holds the TUI application state
type Model struct {
	// Core components
	ctrl    *board.Controller
	src     source.Source
	watcher tuimsg.PrefsWatcher
	styles  *styles.Styles
	keymap  *keymap.Keymap
	logger  *logging.Logger
	spinner spinner.Model

	// Lifetime of the model; canceling stops the preferences watch.
	ctx    context.Context
	cancel context.CancelFunc

	// Preferences written by other processes; nil when not watching.
	prefsCh <-chan ticket.ViewPreferences

	// Current mount; canceling aborts its fetch.
	gen         uint64
	fetchCtx    context.Context
	fetchCancel context.CancelFunc

	// UI state
	mode     keymap.Mode
	width    int
	height   int
	ready    bool
	quitting bool
	focus    int
	scrollX  int
	offsets  []int

	notice    string
	noticeSeq int

	title       string
	columnWidth int
	showTags    bool
}

// NewModel creates the model and mounts the controller. The first fetch
// starts from Init.
func NewModel(opts Options) Model {
	if opts.Styles == nil {
		opts.Styles = styles.New(nil)
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(opts.Styles.Title),
	)

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		ctrl:        opts.Controller,
		src:         opts.Source,
		watcher:     opts.Watcher,
		styles:      opts.Styles,
		keymap:      opts.Keymap,
		logger:      opts.Logger.WithComponent("tui"),
		spinner:     sp,
		ctx:         ctx,
		cancel:      cancel,
		mode:        keymap.ModeNormal,
		title:       opts.Title,
		columnWidth: opts.ColumnWidth,
		showTags:    opts.ShowTags,
	}
	m.mount()
	return m
}

// mount starts a new controller mount, aborting any fetch in flight.
func (m *Model) mount() {
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	m.gen = m.ctrl.Mount()
	m.fetchCtx, m.fetchCancel = context.WithCancel(m.ctx)
}

// teardown cancels all background work. It is safe to call more than once.
func (m *Model) teardown() {
	m.ctrl.Teardown()
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	m.cancel()
}

// columns returns the board columns for the current view.
func (m Model) columns() []board.Column {
	return m.ctrl.Columns()
}

// resetScroll drops per-column scroll positions and keeps focus in range.
func (m *Model) resetScroll(columns int) {
	m.offsets = nil
	m.focus = max(0, min(m.focus, columns-1))
	m.scrollX = 0
}

// offset returns the first visible card of column i.
func (m Model) offset(i int) int {
	if i < len(m.offsets) {
		return m.offsets[i]
	}
	return 0
}

func (m *Model) setOffset(i, v int) {
	for len(m.offsets) <= i {
		m.offsets = append(m.offsets, 0)
	}
	m.offsets[i] = v
}
