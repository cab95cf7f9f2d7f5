package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/Iron-Ham/kanban/internal/ticket"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "view.default_group_by")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSource()...)
	errors = append(errors, c.validateStorage()...)
	errors = append(errors, c.validateView()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSource() []ValidationError {
	var errors []ValidationError

	if c.Source.URL == "" && c.Source.File == "" {
		errors = append(errors, ValidationError{
			Field:   "source.url",
			Value:   c.Source.URL,
			Message: "either source.url or source.file must be set",
		})
	}
	if c.Source.URL != "" && !strings.HasPrefix(c.Source.URL, "http://") && !strings.HasPrefix(c.Source.URL, "https://") {
		errors = append(errors, ValidationError{
			Field:   "source.url",
			Value:   c.Source.URL,
			Message: "must be an http:// or https:// URL",
		})
	}
	if c.Source.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.timeout_seconds",
			Value:   c.Source.TimeoutSeconds,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateStorage() []ValidationError {
	if strings.TrimSpace(c.Storage.Key) == "" {
		return []ValidationError{{
			Field:   "storage.key",
			Value:   c.Storage.Key,
			Message: "must not be empty",
		}}
	}
	return nil
}

func (c *Config) validateView() []ValidationError {
	var errors []ValidationError

	if _, err := ticket.ParseGroupBy(c.View.DefaultGroupBy); err != nil {
		errors = append(errors, ValidationError{
			Field:   "view.default_group_by",
			Value:   c.View.DefaultGroupBy,
			Message: fmt.Sprintf("must be one of: %s", joinOptions(ticket.ValidGroupBy())),
		})
	}
	if _, err := ticket.ParseSortOrder(c.View.DefaultSortOrder); err != nil {
		errors = append(errors, ValidationError{
			Field:   "view.default_sort_order",
			Value:   c.View.DefaultSortOrder,
			Message: fmt.Sprintf("must be one of: %s", joinOptions(ticket.ValidSortOrders())),
		})
	}
	if c.View.Locale != "" {
		if _, err := language.Parse(c.View.Locale); err != nil {
			errors = append(errors, ValidationError{
				Field:   "view.locale",
				Value:   c.View.Locale,
				Message: "must be a BCP 47 language tag",
			})
		}
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !styles.IsBuiltinTheme(c.TUI.Theme) && !styles.IsThemePath(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be a .yaml theme file or one of: %s", strings.Join(styles.BuiltinThemes(), ", ")),
		})
	}

	// 0 means fit to terminal
	const minColumnWidth = 16
	const maxColumnWidth = 120
	if c.TUI.ColumnWidth != 0 {
		if c.TUI.ColumnWidth < minColumnWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.column_width",
				Value:   c.TUI.ColumnWidth,
				Message: fmt.Sprintf("must be at least %d columns", minColumnWidth),
			})
		}
		if c.TUI.ColumnWidth > maxColumnWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.column_width",
				Value:   c.TUI.ColumnWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxColumnWidth),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func joinOptions[T ~string](opts []T) string {
	s := make([]string, len(opts))
	for i, o := range opts {
		s[i] = string(o)
	}
	return strings.Join(s, ", ")
}
