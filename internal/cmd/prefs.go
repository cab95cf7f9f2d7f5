package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the saved board view",
	Long: `Show or change the view preferences the board restores on start.

Without arguments, prints the saved grouping and ordering. Changes made here
are picked up by a running board.`,
	Args: cobra.NoArgs,
	RunE: runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <groupBy|sortOrder> <value>",
	Short: "Save a view preference",
	Long: `Save one view preference.

Examples:
  kanban prefs set groupBy user
  kanban prefs set sortOrder title`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved view",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	rootCmd.AddCommand(prefsCmd)
}

// prefField normalizes the accepted spellings of a preference name.
func prefField(name string) (string, bool) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name)) {
	case "groupby", "group", "grouping":
		return "groupBy", true
	case "sortorder", "sortby", "sort", "ordering":
		return "sortOrder", true
	default:
		return "", false
	}
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPreferences(cfg, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store: %s (key %s)\n\n", p.Path(), p.Key())

	stored, err := p.Load()
	switch {
	case errors.Is(err, errors.ErrPrefsNotFound):
		d := cfg.View.Preferences()
		fmt.Fprintln(out, "No saved view; the board starts with:")
		fmt.Fprintf(out, "  groupBy:   %s\n", d.GroupBy)
		fmt.Fprintf(out, "  sortOrder: %s\n", d.SortOrder)
		return nil
	case err != nil:
		fmt.Fprintf(out, "Saved view is unreadable and will be replaced: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "  groupBy:   %s\n", stored.GroupBy)
	fmt.Fprintf(out, "  sortOrder: %s\n", stored.SortOrder)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	field, ok := prefField(args[0])
	if !ok {
		return errors.NewValidationError("unknown preference; use groupBy or sortOrder").
			WithField("name").
			WithValue(args[0])
	}

	var mutate func(*ticket.ViewPreferences)
	switch field {
	case "groupBy":
		g, err := ticket.ParseGroupBy(args[1])
		if err != nil {
			return errors.NewValidationError(err.Error()).WithField(field).WithValue(args[1])
		}
		mutate = func(v *ticket.ViewPreferences) { v.GroupBy = g }
	default:
		s, err := ticket.ParseSortOrder(args[1])
		if err != nil {
			return errors.NewValidationError(err.Error()).WithField(field).WithValue(args[1])
		}
		mutate = func(v *ticket.ViewPreferences) { v.SortOrder = s }
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPreferences(cfg, nil)
	if err != nil {
		return err
	}

	saved, err := p.Update(cfg.View.Preferences(), mutate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved groupBy=%s sortOrder=%s\n", saved.GroupBy, saved.SortOrder)
	return nil
}

func runPrefsReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPreferences(cfg, nil)
	if err != nil {
		return err
	}
	if err := p.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved view removed.")
	return nil
}
