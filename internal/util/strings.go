// Package util provides shared text helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// It handles ANSI escape codes and wide characters.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width
	return ansi.Truncate(s, maxWidth, "...")
}

// WrapLines word-wraps s to width columns and keeps at most maxLines lines,
// truncating the last kept line when text was dropped. maxLines <= 0 keeps
// every line.
func WrapLines(s string, width, maxLines int) []string {
	if width <= 0 {
		return []string{s}
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}

	kept := lines[:maxLines]
	last := kept[maxLines-1]
	if lipgloss.Width(last)+3 > width {
		last = ansi.Truncate(last, width-3, "")
	}
	kept[maxLines-1] = strings.TrimRight(last, " ") + "..."
	return kept
}

// PadRight pads s with spaces to width visual columns.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
