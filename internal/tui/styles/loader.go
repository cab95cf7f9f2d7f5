package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors contains all color definitions
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// Base colors are required; priority colors fall back to the default palette.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	Priority ThemePriorityColors `yaml:"priority,omitempty"`
}

// ThemePriorityColors defines colors for the ticket priority scale.
type ThemePriorityColors struct {
	Urgent string `yaml:"urgent,omitempty"`
	High   string `yaml:"high,omitempty"`
	Medium string `yaml:"medium,omitempty"`
	Low    string `yaml:"low,omitempty"`
	None   string `yaml:"none,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// IsThemePath reports whether a tui.theme value names a YAML theme file
// rather than a built-in theme.
func IsThemePath(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// LoadThemeFile loads a theme from a YAML file. A leading ~ is expanded.
func LoadThemeFile(path string) (*ThemeFile, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !hexColorRegex.MatchString(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"priority.urgent", t.Colors.Priority.Urgent},
		{"priority.high", t.Colors.Priority.High},
		{"priority.medium", t.Colors.Priority.Medium},
		{"priority.low", t.Colors.Priority.Low},
		{"priority.none", t.Colors.Priority.None},
	}
	for _, c := range optional {
		if c.color != "" && !hexColorRegex.MatchString(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	return nil
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	d := DefaultPalette()
	return &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),

		PriorityUrgent: colorOrDefault(t.Colors.Priority.Urgent, d.PriorityUrgent),
		PriorityHigh:   colorOrDefault(t.Colors.Priority.High, d.PriorityHigh),
		PriorityMedium: colorOrDefault(t.Colors.Priority.Medium, d.PriorityMedium),
		PriorityLow:    colorOrDefault(t.Colors.Priority.Low, d.PriorityLow),
		PriorityNone:   colorOrDefault(t.Colors.Priority.None, d.PriorityNone),
	}
}

func colorOrDefault(color string, fallback lipgloss.Color) lipgloss.Color {
	if color == "" {
		return fallback
	}
	return lipgloss.Color(color)
}

// ResolvePalette returns the palette for a tui.theme value: a built-in
// theme name, a YAML file path, or "" for the default.
func ResolvePalette(theme string) (*ColorPalette, error) {
	if IsThemePath(theme) {
		tf, err := LoadThemeFile(theme)
		if err != nil {
			return nil, err
		}
		return tf.ToPalette(), nil
	}
	if theme != "" && !IsBuiltinTheme(theme) {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	return GetPalette(ThemeName(theme)), nil
}

// FromPalette builds a theme file describing p, suitable as a starting point
// for a custom theme.
func FromPalette(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    name,
		Version: "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Priority: ThemePriorityColors{
				Urgent: string(p.PriorityUrgent),
				High:   string(p.PriorityHigh),
				Medium: string(p.PriorityMedium),
				Low:    string(p.PriorityLow),
				None:   string(p.PriorityNone),
			},
		},
	}
}

// ExportTheme returns the YAML theme file for a built-in theme.
func ExportTheme(name string) ([]byte, error) {
	if !IsBuiltinTheme(name) {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return yaml.Marshal(FromPalette(name, GetPalette(ThemeName(name))))
}
