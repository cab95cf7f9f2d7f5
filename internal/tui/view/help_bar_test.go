package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/kanban/internal/tui/keymap"
)

func TestRenderHelpBar(t *testing.T) {
	km := keymap.DefaultKeymap()

	tests := []struct {
		name    string
		mode    keymap.Mode
		width   int
		want    []string
		notWant []string
	}{
		{
			name:  "normal mode full width",
			mode:  keymap.ModeNormal,
			width: 0,
			want:  []string{"h/l columns", "j/k scroll", "g group", "s order", "r reload", "? help", "q quit"},
		},
		{
			name:    "narrow drops trailing hints",
			mode:    keymap.ModeNormal,
			width:   30,
			want:    []string{"h/l columns"},
			notWant: []string{"q quit"},
		},
		{
			name:    "help mode",
			mode:    keymap.ModeHelp,
			width:   80,
			want:    []string{"? close", "ctrl+c quit"},
			notWant: []string{"columns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHelpBar(testStyles(), km, tt.mode, tt.width)
			plain := ansi.Strip(out)
			for _, w := range tt.want {
				if !strings.Contains(plain, w) {
					t.Errorf("help bar missing %q: %q", w, plain)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(plain, w) {
					t.Errorf("help bar should not contain %q: %q", w, plain)
				}
			}
			if tt.width > 0 && lipgloss.Width(out) > tt.width {
				t.Errorf("help bar width = %d, want <= %d", lipgloss.Width(out), tt.width)
			}
		})
	}
}

func TestRenderHelp(t *testing.T) {
	plain := ansi.Strip(RenderHelp(testStyles(), keymap.DefaultKeymap(), 0, 0))

	for _, want := range []string{
		"Keyboard shortcuts",
		"Navigation", "Display", "Application",
		"l, right, tab", "Next column",
		"Cycle grouping", "Group by priority",
		"q, ctrl+c",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("help overlay missing %q:\n%s", want, plain)
		}
	}
}
