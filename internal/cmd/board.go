package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/tui"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board",
	Long: `Open the interactive board. This is what running kanban without a
subcommand does.

Keys: g cycles grouping, s cycles ordering, h/l move between columns,
j/k scroll the focused column, r reloads and ? lists every shortcut.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
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

	st, err := resolveStyles(cfg)
	if err != nil {
		return err
	}

	src := source.New(cfg.Source, logger)
	ctrl := board.NewController(prefs,
		board.WithLogger(logger),
		board.WithCollator(buildCollator(cfg, logger)),
		board.WithDefaults(cfg.View.Preferences()),
	)

	logger.Info("starting board", "source", src.Describe(), "store", prefs.Path())

	app := tui.New(tui.Options{
		Controller:  ctrl,
		Source:      src,
		Watcher:     prefs,
		Styles:      st,
		Keymap:      keymap.DefaultKeymap(),
		Logger:      logger,
		Title:       "Kanban",
		ColumnWidth: cfg.TUI.ColumnWidth,
		ShowTags:    cfg.TUI.ShowTags,
	})
	return app.Run()
}
