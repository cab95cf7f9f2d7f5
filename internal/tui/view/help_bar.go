package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
)

// hint is one entry of the bottom help bar.
type hint struct {
	commands []keymap.Command
	label    string
}

var normalHints = []hint{
	{[]keymap.Command{keymap.CmdPrevColumn, keymap.CmdNextColumn}, "columns"},
	{[]keymap.Command{keymap.CmdScrollDown, keymap.CmdScrollUp}, "scroll"},
	{[]keymap.Command{keymap.CmdCycleGroupBy}, "group"},
	{[]keymap.Command{keymap.CmdCycleSortOrder}, "order"},
	{[]keymap.Command{keymap.CmdReload}, "reload"},
	{[]keymap.Command{keymap.CmdToggleHelp}, "help"},
	{[]keymap.Command{keymap.CmdQuit}, "quit"},
}

var helpHints = []hint{
	{[]keymap.Command{keymap.CmdCloseHelp}, "close"},
	{[]keymap.Command{keymap.CmdQuit}, "quit"},
}

// RenderHelpBar renders the one-line key hints for mode, dropping hints from
// the right until the bar fits width.
func RenderHelpBar(s *styles.Styles, km *keymap.Keymap, mode keymap.Mode, width int) string {
	hints := normalHints
	if mode == keymap.ModeHelp {
		hints = helpHints
	}

	var parts []string
	for _, h := range hints {
		keys := make([]string, 0, len(h.commands))
		for _, cmd := range h.commands {
			if k := keyFor(km, mode, cmd); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, s.HelpKey.Render(strings.Join(keys, "/"))+" "+s.HelpDesc.Render(h.label))
	}

	sep := s.Muted.Render(" · ")
	for len(parts) > 0 {
		line := strings.Join(parts, sep)
		if width <= 0 || lipgloss.Width(line) <= width {
			return line
		}
		parts = parts[:len(parts)-1]
	}
	return ""
}

// keyFor returns the first key bound to cmd in mode.
func keyFor(km *keymap.Keymap, mode keymap.Mode, cmd keymap.Command) string {
	for _, b := range km.GetModeBindings(mode) {
		if b.Command == cmd {
			return b.String()
		}
	}
	return ""
}

// RenderHelp renders the help overlay listing every normal-mode binding by
// category, centered in width x height.
func RenderHelp(s *styles.Styles, km *keymap.Keymap, width, height int) string {
	type row struct{ keys, desc string }

	var sections [][]row
	var titles []string
	keyWidth := 0
	for _, category := range km.GetCategories(keymap.ModeNormal) {
		var rows []row
		for _, e := range km.HelpFor(keymap.ModeNormal, category) {
			keys := strings.Join(e.Keys, ", ")
			keyWidth = max(keyWidth, lipgloss.Width(keys))
			rows = append(rows, row{keys, e.Description})
		}
		titles = append(titles, category)
		sections = append(sections, rows)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard shortcuts"))
	for i, rows := range sections {
		b.WriteString("\n\n")
		b.WriteString(s.Subtitle.Render(titles[i]))
		for _, r := range rows {
			b.WriteString("\n")
			b.WriteString(s.HelpKey.Render(util.PadRight(r.keys, keyWidth)))
			b.WriteString("  ")
			b.WriteString(s.HelpDesc.Render(r.desc))
		}
	}

	box := s.HelpBox.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
