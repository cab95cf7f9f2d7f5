// Package config provides CLI commands for managing kanban configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/kanban/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify kanban configuration",
	Long: `View or modify kanban configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  kanban config set source.file ./tickets.jsonc
  kanban config set view.default_group_by user
  kanban config set tui.theme dracula

Run 'kanban config show' to list every key.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/kanban/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  kanban config reset                # Reset all to defaults
  kanban config reset tui.show_tags  # Reset only tui.show_tags to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// entry is one configuration key with its default value.
type entry struct {
	key     string
	value   any
	comment string
}

// section is a top-level configuration block.
type section struct {
	name    string
	comment string
	entries []entry
}

// sections describes every configuration key, with values taken from cfg.
func sections(cfg *appconfig.Config) []section {
	return []section{
		{
			name:    "source",
			comment: "Where tickets and users are loaded from",
			entries: []entry{
				{"url", cfg.Source.URL, "HTTP endpoint returning {tickets, users}"},
				{"file", cfg.Source.File, "Local JSON or JSONC file; takes precedence over url"},
				{"timeout_seconds", cfg.Source.TimeoutSeconds, "Fetch timeout in seconds (0 = none)"},
			},
		},
		{
			name:    "storage",
			comment: "Where view preferences are persisted",
			entries: []entry{
				{"dir", cfg.Storage.Dir, "State directory (empty = config directory)"},
				{"key", cfg.Storage.Key, "Store entry holding the view preferences"},
			},
		},
		{
			name:    "view",
			comment: "Initial view used until preferences are saved",
			entries: []entry{
				{"default_group_by", cfg.View.DefaultGroupBy, "status, user or priority"},
				{"default_sort_order", cfg.View.DefaultSortOrder, "priority or title"},
				{"locale", cfg.View.Locale, "BCP 47 locale used to order titles"},
			},
		},
		{
			name:    "tui",
			comment: "Terminal UI settings",
			entries: []entry{
				{"theme", cfg.TUI.Theme, "Built-in theme name or path to a YAML theme file"},
				{"column_width", cfg.TUI.ColumnWidth, "Column width (0 = fit to terminal)"},
				{"show_tags", cfg.TUI.ShowTags, "Show ticket tags on cards"},
			},
		},
		{
			name:    "logging",
			comment: "Debug logging to debug.log in the state directory",
			entries: []entry{
				{"enabled", cfg.Logging.Enabled, ""},
				{"level", cfg.Logging.Level, "debug, info, warn or error"},
				{"max_size_mb", cfg.Logging.MaxSizeMB, "Rotate debug.log at this size"},
				{"max_backups", cfg.Logging.MaxBackups, "Rotated files to keep"},
			},
		},
	}
}

// defaultValues maps every dotted key to its default value.
func defaultValues() map[string]any {
	values := make(map[string]any)
	for _, s := range sections(appconfig.Default()) {
		for _, e := range s.entries {
			values[s.name+"."+e.key] = e.value
		}
	}
	return values
}

// renderConfigYAML renders the sections as a commented YAML document.
func renderConfigYAML(secs []section) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range secs {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.entries {
			var value yaml.Node
			if err := value.Encode(e.value); err != nil {
				return nil, fmt.Errorf("encoding %s.%s: %w", s.name, e.key, err)
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.key, HeadComment: e.comment}
			body.Content = append(body.Content, key, &value)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: s.name, HeadComment: s.comment}
		root.Content = append(root.Content, key, body)
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "Kanban board configuration",
		Content:     []*yaml.Node{root},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var cfg appconfig.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	for _, s := range sections(&cfg) {
		fmt.Fprintf(out, "%s:\n", s.name)
		for _, e := range s.entries {
			fmt.Fprintf(out, "  %s: %v\n", e.key, e.value)
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Problems:")
		for _, err := range errs {
			fmt.Fprintf(out, "  - %v\n", err)
		}
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	def, ok := defaultValues()[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, keyList())
	}

	// Parse the value based on the default's type
	var typedValue any
	switch def.(type) {
	case bool:
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case int:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = intVal
	default:
		typedValue = value
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'kanban config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := renderConfigYAML(sections(appconfig.Default()))
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize the board.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/kanban/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: KANBAN_* (e.g., KANBAN_SOURCE_FILE)")
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	defaults := defaultValues()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, keyList())
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// writeConfig writes the current viper settings to the config file.
func writeConfig() (string, error) {
	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// keyList returns the valid keys for help text.
func keyList() string {
	var keys []string
	for _, s := range sections(appconfig.Default()) {
		for _, e := range s.entries {
			keys = append(keys, s.name+"."+e.key)
		}
	}
	return strings.Join(keys, ", ")
}
