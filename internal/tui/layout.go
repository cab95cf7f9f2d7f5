// Package tui provides the interactive terminal board.
// This file contains layout-related constants and dimension calculation functions.
package tui

// Layout offsets. These represent the space taken by fixed UI elements.
const (
	// HeaderHeight is the title line plus its bottom border and margin.
	HeaderHeight = 3

	// StatusHeight is the status line plus its top margin.
	StatusHeight = 2

	// HelpBarHeight is the one-line key hint bar.
	HelpBarHeight = 1

	// BoardMinHeight is the smallest board area rendered on short terminals.
	BoardMinHeight = 8
)

// BoardHeight returns the height available to the columns for a terminal of
// the given height.
func BoardHeight(termHeight int) int {
	return max(BoardMinHeight, termHeight-HeaderHeight-StatusHeight-HelpBarHeight)
}
