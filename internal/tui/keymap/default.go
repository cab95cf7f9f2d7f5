package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default board key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Column focus
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextColumn, Description: "Next column", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdNextColumn, Description: "Next column", Category: "Navigation"},
			{KeyType: tea.KeyTab, Command: CmdNextColumn, Description: "Next column", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevColumn, Description: "Previous column", Category: "Navigation"},
			{KeyType: tea.KeyLeft, Command: CmdPrevColumn, Description: "Previous column", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevColumn, Description: "Previous column", Category: "Navigation"},

			// Scrolling within the focused column
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up", Category: "Navigation"},
			{KeyType: tea.KeyHome, Command: CmdScrollToTop, Description: "Top of column", Category: "Navigation"},
			{KeyType: tea.KeyEnd, Command: CmdScrollToBottom, Description: "Bottom of column", Category: "Navigation"},

			// Display options
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCycleGroupBy, Description: "Cycle grouping", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdCycleSortOrder, Description: "Cycle ordering", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdGroupByStatus, Description: "Group by status", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdGroupByUser, Description: "Group by user", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdGroupByPriority, Description: "Group by priority", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdSortByPriority, Description: "Order by priority", Category: "Display"},
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdSortByTitle, Description: "Order by title", Category: "Display"},

			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReload, Description: "Reload tickets", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyEsc, Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Help"},
		},
	}
}
