package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/kanban/internal/ticket"
)

// DefaultURL is the ticket feed the board reads when no source is configured.
const DefaultURL = "https://api.quicksell.co/v1/internal/frontend-assignment"

// DefaultStorageKey is the store entry holding the view preferences.
const DefaultStorageKey = "kanbanViewState"

// Config represents the complete kanban configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Storage StorageConfig `mapstructure:"storage"`
	View    ViewConfig    `mapstructure:"view"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig selects where tickets and users are fetched from.
type SourceConfig struct {
	// URL is the HTTP endpoint returning {"tickets": [...], "users": [...]}
	URL string `mapstructure:"url"`
	// File, when set, reads the same payload from a local JSON/JSONC file
	// instead of URL
	File string `mapstructure:"file"`
	// TimeoutSeconds bounds the fetch (0 = no timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// StorageConfig controls where view preferences are persisted
type StorageConfig struct {
	// Dir is the state directory holding storage.json and debug.log.
	// Empty means ConfigDir(). A leading ~ is expanded.
	Dir string `mapstructure:"dir"`
	// Key is the store entry name for the view preferences
	Key string `mapstructure:"key"`
}

// ViewConfig holds the initial view options used before any preference has
// been persisted.
type ViewConfig struct {
	DefaultGroupBy   string `mapstructure:"default_group_by"`
	DefaultSortOrder string `mapstructure:"default_sort_order"`
	// Locale is the BCP 47 tag used to collate titles (default "en")
	Locale string `mapstructure:"locale"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is a built-in theme name or a path to a YAML theme file
	Theme string `mapstructure:"theme"`
	// ColumnWidth is the width of each board column (0 = fit to terminal)
	ColumnWidth int `mapstructure:"column_width"`
	// ShowTags renders the tag line on each card
	ShowTags bool `mapstructure:"show_tags"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns on writing debug.log in the state directory
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which debug.log is rotated
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:            DefaultURL,
			File:           "",
			TimeoutSeconds: 0,
		},
		Storage: StorageConfig{
			Dir: "",
			Key: DefaultStorageKey,
		},
		View: ViewConfig{
			DefaultGroupBy:   string(ticket.GroupByStatus),
			DefaultSortOrder: string(ticket.SortByPriority),
			Locale:           ticket.DefaultLocale,
		},
		TUI: TUIConfig{
			Theme:       "default",
			ColumnWidth: 0,
			ShowTags:    true,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Timeout returns the fetch timeout as a duration (0 = none).
func (c *SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Preferences returns the configured initial view options.
func (c *ViewConfig) Preferences() ticket.ViewPreferences {
	return ticket.ViewPreferences{
		GroupBy:   ticket.GroupBy(c.DefaultGroupBy),
		SortOrder: ticket.SortOrder(c.DefaultSortOrder),
	}
}

// ResolveStateDir returns the directory holding the preference store and
// logs, expanding a leading ~ in Storage.Dir.
func (c *Config) ResolveStateDir() string {
	dir := c.Storage.Dir
	if dir == "" {
		return ConfigDir()
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("source.url", defaults.Source.URL)
	viper.SetDefault("source.file", defaults.Source.File)
	viper.SetDefault("source.timeout_seconds", defaults.Source.TimeoutSeconds)

	viper.SetDefault("storage.dir", defaults.Storage.Dir)
	viper.SetDefault("storage.key", defaults.Storage.Key)

	viper.SetDefault("view.default_group_by", defaults.View.DefaultGroupBy)
	viper.SetDefault("view.default_sort_order", defaults.View.DefaultSortOrder)
	viper.SetDefault("view.locale", defaults.View.Locale)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.column_width", defaults.TUI.ColumnWidth)
	viper.SetDefault("tui.show_tags", defaults.TUI.ShowTags)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".config", "kanban")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
