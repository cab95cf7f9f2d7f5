package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "tui.column_width", Value: 3, Message: "must be at least 16 columns"}
	want := "tui.column_width: must be at least 16 columns (got: 3)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := ValidationErrors(nil).Error(); got != "" {
		t.Errorf("empty Error() = %q", got)
	}

	one := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	if got := one.Error(); got != "a: bad (got: 1)" {
		t.Errorf("single Error() = %q", got)
	}

	two := ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	got := two.Error()
	if !strings.HasPrefix(got, "2 validation errors:") || !strings.Contains(got, "2. b: worse") {
		t.Errorf("multi Error() = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"no source", func(c *Config) { c.Source.URL = "" }, "source.url"},
		{"file only is fine", func(c *Config) { c.Source.URL = ""; c.Source.File = "feed.json" }, ""},
		{"non-http url", func(c *Config) { c.Source.URL = "ftp://feed" }, "source.url"},
		{"negative timeout", func(c *Config) { c.Source.TimeoutSeconds = -1 }, "source.timeout_seconds"},
		{"empty storage key", func(c *Config) { c.Storage.Key = " " }, "storage.key"},
		{"bad group by", func(c *Config) { c.View.DefaultGroupBy = "tag" }, "view.default_group_by"},
		{"bad sort order", func(c *Config) { c.View.DefaultSortOrder = "status" }, "view.default_sort_order"},
		{"bad locale", func(c *Config) { c.View.Locale = "not a tag!" }, "view.locale"},
		{"empty locale is fine", func(c *Config) { c.View.Locale = "" }, ""},
		{"builtin theme", func(c *Config) { c.TUI.Theme = "nord" }, ""},
		{"theme file", func(c *Config) { c.TUI.Theme = "~/themes/mine.yaml" }, ""},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "sparkle" }, "tui.theme"},
		{"narrow column", func(c *Config) { c.TUI.ColumnWidth = 4 }, "tui.column_width"},
		{"wide column", func(c *Config) { c.TUI.ColumnWidth = 500 }, "tui.column_width"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Field != tt.wantField {
				t.Errorf("Validate() = %v, want one error on %s", errs, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.View.DefaultGroupBy = "x"
	cfg.Logging.Level = "x"

	if errs := cfg.Validate(); len(errs) != 2 {
		t.Errorf("Validate() returned %d errors, want 2: %v", len(errs), errs)
	}
}
