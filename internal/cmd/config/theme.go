package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the board.

Set tui.theme to a built-in theme name, or to the path of a YAML theme file.
Use 'theme export' to create a starting point for a custom theme.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a built-in theme to YAML format for customization.

If no output file is specified, the YAML is printed to stdout.

Examples:
  kanban config theme export default              # Print default theme to stdout
  kanban config theme export nord my-theme.yaml   # Save nord theme to file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name|theme-file>",
	Short: "Show the colors of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	configCmd.AddCommand(themeCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Custom themes: set tui.theme to a .yaml file path")
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	data, err := styles.ExportTheme(themeName)
	if err != nil {
		return fmt.Errorf("%w\nRun 'kanban config theme list' to see available themes", err)
	}

	// If output file specified, write to file
	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themeName := args[0]

	palette, err := styles.ResolvePalette(themeName)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	if styles.IsThemePath(themeName) {
		fmt.Fprintln(out, "Type: Custom")
	} else {
		fmt.Fprintln(out, "Type: Built-in")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", palette.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", palette.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", palette.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", palette.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", palette.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:    %s\n", palette.Border)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Priority Colors:")
	fmt.Fprintf(out, "  Urgent: %s\n", palette.PriorityUrgent)
	fmt.Fprintf(out, "  High:   %s\n", palette.PriorityHigh)
	fmt.Fprintf(out, "  Medium: %s\n", palette.PriorityMedium)
	fmt.Fprintf(out, "  Low:    %s\n", palette.PriorityLow)
	fmt.Fprintf(out, "  None:   %s\n", palette.PriorityNone)
	return nil
}
