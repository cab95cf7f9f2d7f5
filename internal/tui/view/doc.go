// Package view renders the kanban board as strings. Every renderer is a pure
// function of a styles.Styles value and a small state struct, so the
// interactive model and the one-shot `show` command share the same output.
//
// # Main Types
//
//   - [BoardState]: columns, focus, scroll offsets and size for [RenderBoard]
//   - [HeaderState]: title line with the active grouping and ordering
//   - [StatusState]: loading spinner, fetch error or data source line
//
// # Layout
//
// Columns are laid out left to right at a fixed width ([ColumnWidth]). When
// they do not fit, the interactive board shows a window of columns around the
// focused one with ◀/▶ markers, and `show` wraps them onto extra rows.
// Inside a column, cards past the available height are replaced by ▲/▼
// "N more" markers.
package view
