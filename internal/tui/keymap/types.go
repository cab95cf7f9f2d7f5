// Package keymap provides key binding definitions and lookup for the board
// TUI. Bindings are declared per mode and looked up by the Update loop, which
// also renders them in the help overlay.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
type Mode string

const (
	ModeNormal Mode = "normal" // Board view
	ModeHelp   Mode = "help"   // Help overlay shown
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Column focus and scrolling
	CmdNextColumn     Command = "next_column"
	CmdPrevColumn     Command = "prev_column"
	CmdScrollDown     Command = "scroll_down"
	CmdScrollUp       Command = "scroll_up"
	CmdScrollToTop    Command = "scroll_to_top"
	CmdScrollToBottom Command = "scroll_to_bottom"

	// View options
	CmdCycleGroupBy    Command = "cycle_group_by"
	CmdCycleSortOrder  Command = "cycle_sort_order"
	CmdGroupByStatus   Command = "group_by_status"
	CmdGroupByUser     Command = "group_by_user"
	CmdGroupByPriority Command = "group_by_priority"
	CmdSortByPriority  Command = "sort_by_priority"
	CmdSortByTitle     Command = "sort_by_title"

	CmdReload     Command = "reload"
	CmdToggleHelp Command = "toggle_help"
	CmdCloseHelp  Command = "close_help"
	CmdQuit       Command = "quit"
)

// Modifier represents keyboard modifiers.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For rune keys use tea.KeyRunes
	// and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is shown in the help overlay.
	Description string

	// Category groups related bindings in the help overlay.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return prefix + "space"
	}
	return prefix + string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetCategories returns the categories of a mode's bindings in declaration
// order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// HelpEntry is one line of the help overlay: every key bound to a command.
type HelpEntry struct {
	Keys        []string
	Description string
}

// HelpFor returns the help entries of one category, merging bindings that
// share a command.
func (km *Keymap) HelpFor(mode Mode, category string) []HelpEntry {
	var entries []HelpEntry
	index := make(map[Command]int)

	for _, b := range km.GetModeBindings(mode) {
		if b.Category != category {
			continue
		}
		if i, ok := index[b.Command]; ok {
			entries[i].Keys = append(entries[i].Keys, b.String())
			continue
		}
		index[b.Command] = len(entries)
		entries = append(entries, HelpEntry{Keys: []string{b.String()}, Description: b.Description})
	}
	return entries
}
