package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/kanban/internal/ticket"
)

func TestRenderCard(t *testing.T) {
	tk := ticket.Ticket{
		ID:       "CAM-5",
		Title:    "Add Multi-Language Support",
		Tag:      ticket.Tags{"Feature Request"},
		Priority: 4,
	}

	tests := []struct {
		name     string
		showTags bool
		want     []string
		notWant  []string
	}{
		{
			name:     "with tags",
			showTags: true,
			want:     []string{"CAM-5", "!", "Add Multi-Language", "Feature Request"},
		},
		{
			name:     "without tags",
			showTags: false,
			want:     []string{"CAM-5", "Add Multi-Language"},
			notWant:  []string{"Feature Request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCard(testStyles(), tk, 30, tt.showTags)
			plain := ansi.Strip(out)
			for _, w := range tt.want {
				if !strings.Contains(plain, w) {
					t.Errorf("card missing %q:\n%s", w, plain)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(plain, w) {
					t.Errorf("card should not contain %q:\n%s", w, plain)
				}
			}
			for _, line := range strings.Split(out, "\n") {
				if w := lipgloss.Width(line); w > 30 {
					t.Errorf("line wider than card (%d): %q", w, line)
				}
			}
		})
	}
}

func TestRenderCard_LongTitle(t *testing.T) {
	tk := ticket.Ticket{
		ID:    "CAM-9",
		Title: "Implement a very long ticket title that cannot possibly fit on two lines of a narrow card",
	}

	plain := ansi.Strip(RenderCard(testStyles(), tk, 24, false))
	if !strings.Contains(plain, "...") {
		t.Errorf("long title should be cut with an ellipsis:\n%s", plain)
	}
	if strings.Contains(plain, "narrow card") {
		t.Errorf("title tail should be dropped:\n%s", plain)
	}
}

func TestRenderCard_NoTagsOmitsTagLine(t *testing.T) {
	tk := ticket.Ticket{ID: "CAM-1", Title: "Short"}
	withTags := RenderCard(testStyles(), tk, 30, true)
	without := RenderCard(testStyles(), tk, 30, false)
	if lipgloss.Height(withTags) != lipgloss.Height(without) {
		t.Errorf("untagged card grew a tag line: %d vs %d lines", lipgloss.Height(withTags), lipgloss.Height(without))
	}
}
