package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	configcmd "github.com/Iron-Ham/kanban/internal/cmd/config"
	"github.com/Iron-Ham/kanban/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Terminal kanban board for ticket feeds",
	Long: `Kanban renders a ticket feed as a board of columns in the terminal.

Tickets are grouped by status, assigned user or priority and ordered by
priority or title. The chosen view is remembered between runs.

Run without a subcommand to open the interactive board.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/kanban/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "read tickets from a local JSON/JSONC file")
	rootCmd.PersistentFlags().String("url", "", "read tickets from this HTTP endpoint")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("source.file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("source.url", rootCmd.PersistentFlags().Lookup("url"))

	configcmd.Register(rootCmd)
}

// normalizeFlagName accepts underscores in flag names, so --group_by works
// like --group-by.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/kanban")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KANBAN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., KANBAN_SOURCE_FILE for source.file
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
