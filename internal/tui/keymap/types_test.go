package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{"rune match", KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'}, runeKey('g'), true},
		{"rune mismatch", KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'}, runeKey('s'), false},
		{"special key match", KeyBinding{KeyType: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, true},
		{"special key mismatch", KeyBinding{KeyType: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight}, false},
		{"rune binding vs special key", KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'}, tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"empty runes", KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'}, tea.KeyMsg{Type: tea.KeyRunes}, false},
		{"alt required", KeyBinding{KeyType: tea.KeyRunes, Rune: 'g', Modifiers: ModAlt}, runeKey('g'), false},
		{"alt present", KeyBinding{KeyType: tea.KeyRunes, Rune: 'g', Modifiers: ModAlt}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, true},
		{"alt unexpected", KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'}, "g"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{KeyType: tea.KeyCtrlC}, "ctrl+c"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}
	for _, tt := range tests {
		if got := tt.binding.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaultKeymap_Normal(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		msg  tea.KeyMsg
		want Command
	}{
		{runeKey('g'), CmdCycleGroupBy},
		{runeKey('s'), CmdCycleSortOrder},
		{runeKey('1'), CmdGroupByStatus},
		{runeKey('2'), CmdGroupByUser},
		{runeKey('3'), CmdGroupByPriority},
		{runeKey('p'), CmdSortByPriority},
		{runeKey('t'), CmdSortByTitle},
		{runeKey('l'), CmdNextColumn},
		{tea.KeyMsg{Type: tea.KeyRight}, CmdNextColumn},
		{runeKey('h'), CmdPrevColumn},
		{tea.KeyMsg{Type: tea.KeyLeft}, CmdPrevColumn},
		{runeKey('j'), CmdScrollDown},
		{runeKey('k'), CmdScrollUp},
		{runeKey('r'), CmdReload},
		{runeKey('?'), CmdToggleHelp},
		{runeKey('q'), CmdQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		got, ok := km.GetBinding(tt.msg, ModeNormal)
		if !ok || got != tt.want {
			t.Errorf("GetBinding(%s) = %q, %v; want %q", tt.msg, got, ok, tt.want)
		}
	}

	if _, ok := km.GetBinding(runeKey('z'), ModeNormal); ok {
		t.Error("unbound key should not resolve")
	}
}

func TestDefaultKeymap_Help(t *testing.T) {
	km := DefaultKeymap()

	for _, msg := range []tea.KeyMsg{runeKey('?'), runeKey('q'), {Type: tea.KeyEsc}} {
		if got, _ := km.GetBinding(msg, ModeHelp); got != CmdCloseHelp {
			t.Errorf("GetBinding(%s, help) = %q, want close", msg, got)
		}
	}
	if got, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyCtrlC}, ModeHelp); got != CmdQuit {
		t.Errorf("ctrl+c in help = %q, want quit", got)
	}
	if _, ok := km.GetBinding(runeKey('g'), ModeHelp); ok {
		t.Error("board keys should not fire while help is open")
	}
	if _, ok := km.GetBinding(runeKey('g'), Mode("bogus")); ok {
		t.Error("unknown mode should not resolve")
	}
}

func TestKeymap_Categories(t *testing.T) {
	km := DefaultKeymap()

	want := []string{"Navigation", "Display", "Application"}
	if got := km.GetCategories(ModeNormal); !slices.Equal(got, want) {
		t.Errorf("GetCategories() = %v, want %v", got, want)
	}
}

func TestKeymap_HelpFor(t *testing.T) {
	km := DefaultKeymap()

	entries := km.HelpFor(ModeNormal, "Navigation")
	if len(entries) != 6 {
		t.Fatalf("got %d navigation entries, want 6: %+v", len(entries), entries)
	}
	first := entries[0]
	if first.Description != "Next column" || !slices.Equal(first.Keys, []string{"l", "right", "tab"}) {
		t.Errorf("first entry = %+v", first)
	}

	quit := km.HelpFor(ModeNormal, "Application")
	last := quit[len(quit)-1]
	if !slices.Equal(last.Keys, []string{"q", "ctrl+c"}) {
		t.Errorf("quit keys = %v", last.Keys)
	}
}
