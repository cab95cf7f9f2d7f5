package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/prefs"
	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// loadConfig reads and validates the merged configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w\nRun 'kanban config show' to review it", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger if logging is enabled in config.
// Returns a NopLogger if logging is disabled or if creation fails.
func CreateLogger(stateDir string, cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	rotationConfig := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}

	logger, err := logging.NewWithRotation(stateDir, cfg.Logging.Level, rotationConfig)
	if err != nil {
		// Log creation failure shouldn't prevent the board from starting
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}

	return logger
}

// openPreferences opens the preference store in the configured state
// directory.
func openPreferences(cfg *config.Config, logger *logging.Logger) (*prefs.Preferences, error) {
	store, err := prefs.NewStore(cfg.ResolveStateDir())
	if err != nil {
		return nil, errors.Wrap(err, "open preference store")
	}
	return prefs.NewPreferences(store, cfg.Storage.Key, logger), nil
}

// buildCollator returns the title collator for the configured locale,
// falling back to the default locale.
func buildCollator(cfg *config.Config, logger *logging.Logger) ticket.Collator {
	coll, err := ticket.NewCollator(cfg.View.Locale)
	if err == nil {
		return coll
	}

	logger.Warn("unusable locale, using default", "locale", cfg.View.Locale, "error", err)
	coll, err = ticket.NewCollator(ticket.DefaultLocale)
	if err != nil {
		return nil
	}
	return coll
}

// resolveStyles builds the styles for the configured theme.
func resolveStyles(cfg *config.Config) (*styles.Styles, error) {
	palette, err := styles.ResolvePalette(cfg.TUI.Theme)
	if err != nil {
		return nil, errors.Wrapf(err, "loading theme %q", cfg.TUI.Theme)
	}
	return styles.New(palette), nil
}

// storedView returns the persisted view preferences, or fallback when
// nothing usable is stored. It never writes.
func storedView(p *prefs.Preferences, fallback ticket.ViewPreferences, logger *logging.Logger) ticket.ViewPreferences {
	stored, err := p.Load()
	if err != nil {
		logger.Debug("using default view", "reason", err)
		return fallback
	}
	if stored.GroupBy == "" {
		return fallback
	}
	return stored
}
