package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// defaultShowWidth is used when stdout is not a terminal.
const defaultShowWidth = 80

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board once and exit",
	Long: `Fetch the tickets and print the board without starting the interactive UI.

The saved view is used unless --group-by or --sort-by override it. Overrides
are not saved. Columns that do not fit the width wrap onto further rows.

Examples:
  kanban show
  kanban show --group-by user --sort-by title
  kanban show -f tickets.jsonc --width 120 > board.txt`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var (
	showGroupBy string
	showSortBy  string
	showWidth   int
	showNoTags  bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showGroupBy, "group-by", "g", "", "group tickets by status, user or priority")
	showCmd.Flags().StringVarP(&showSortBy, "sort-by", "s", "", "order tickets by priority or title")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "output width (default: terminal width)")
	showCmd.Flags().BoolVar(&showNoTags, "no-tags", false, "hide ticket tags")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := CreateLogger(cfg.ResolveStateDir(), cfg)
	defer func() { _ = logger.Close() }()

	prefs, err := openPreferences(cfg, logger)
	if err != nil {
		return err
	}

	v := storedView(prefs, cfg.View.Preferences(), logger)
	if showGroupBy != "" {
		if v.GroupBy, err = ticket.ParseGroupBy(showGroupBy); err != nil {
			return errors.NewValidationError(err.Error()).WithField("group-by").WithValue(showGroupBy)
		}
	}
	if showSortBy != "" {
		if v.SortOrder, err = ticket.ParseSortOrder(showSortBy); err != nil {
			return errors.NewValidationError(err.Error()).WithField("sort-by").WithValue(showSortBy)
		}
	}

	st, err := resolveStyles(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	src := source.New(cfg.Source, logger)
	ds, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	width := showWidth
	if width <= 0 {
		width = outputWidth()
	}

	grouped := ticket.Arrange(ds.Tickets, v, buildCollator(cfg, logger))
	cols := board.BuildColumns(grouped, v.GroupBy, ds.Users, logger.WithComponent("board"))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, view.RenderHeader(st, view.HeaderState{
		Title:     "Kanban",
		GroupBy:   v.GroupBy,
		SortOrder: v.SortOrder,
		Tickets:   len(ds.Tickets),
		Columns:   len(cols),
		Width:     width,
	}))
	fmt.Fprintln(out, view.RenderBoard(st, view.BoardState{
		Columns:     cols,
		Focus:       -1,
		Width:       width,
		ColumnWidth: cfg.TUI.ColumnWidth,
		ShowTags:    cfg.TUI.ShowTags && !showNoTags,
		Wrap:        true,
	}))
	return nil
}

// outputWidth returns the terminal width of stdout, or defaultShowWidth when
// stdout is not a terminal.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultShowWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultShowWidth
	}
	return w
}
