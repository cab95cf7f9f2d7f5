package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
	ThemeGruvbox ThemeName = "gruvbox"
	ThemeLight   ThemeName = "light" // For light terminal backgrounds
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
		string(ThemeLight),
	}
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (focused column, header title)
	Primary lipgloss.Color
	// Secondary accent color (group counts, tags)
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	// Muted color (ticket ids, help descriptions)
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color

	// Priority colors, indexed by the ticket priority scale
	PriorityUrgent lipgloss.Color
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
	PriorityNone   lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		PriorityUrgent: lipgloss.Color("#F87171"),
		PriorityHigh:   lipgloss.Color("#FB923C"),
		PriorityMedium: lipgloss.Color("#FBBF24"),
		PriorityLow:    lipgloss.Color("#60A5FA"),
		PriorityNone:   lipgloss.Color("#9CA3AF"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#44475A"),

		PriorityUrgent: lipgloss.Color("#FF5555"),
		PriorityHigh:   lipgloss.Color("#FFB86C"),
		PriorityMedium: lipgloss.Color("#F1FA8C"),
		PriorityLow:    lipgloss.Color("#8BE9FD"),
		PriorityNone:   lipgloss.Color("#6272A4"),
	}
}

// NordPalette returns the Nord theme palette (cool blue-gray).
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#4C566A"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#3B4252"),

		PriorityUrgent: lipgloss.Color("#BF616A"),
		PriorityHigh:   lipgloss.Color("#D08770"),
		PriorityMedium: lipgloss.Color("#EBCB8B"),
		PriorityLow:    lipgloss.Color("#81A1C1"),
		PriorityNone:   lipgloss.Color("#4C566A"),
	}
}

// GruvboxPalette returns the Gruvbox theme palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#83A598"), // Gruvbox aqua
		Secondary: lipgloss.Color("#B8BB26"),
		Warning:   lipgloss.Color("#FABD2F"),
		Error:     lipgloss.Color("#FB4934"),
		Muted:     lipgloss.Color("#928374"),
		Surface:   lipgloss.Color("#282828"),
		Text:      lipgloss.Color("#EBDBB2"),
		Border:    lipgloss.Color("#3C3836"),

		PriorityUrgent: lipgloss.Color("#FB4934"),
		PriorityHigh:   lipgloss.Color("#FE8019"),
		PriorityMedium: lipgloss.Color("#FABD2F"),
		PriorityLow:    lipgloss.Color("#83A598"),
		PriorityNone:   lipgloss.Color("#928374"),
	}
}

// LightPalette returns a palette readable on light backgrounds.
func LightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#6D28D9"),
		Secondary: lipgloss.Color("#047857"),
		Warning:   lipgloss.Color("#B45309"),
		Error:     lipgloss.Color("#B91C1C"),
		Muted:     lipgloss.Color("#4B5563"),
		Surface:   lipgloss.Color("#F3F4F6"),
		Text:      lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#9CA3AF"),

		PriorityUrgent: lipgloss.Color("#B91C1C"),
		PriorityHigh:   lipgloss.Color("#C2410C"),
		PriorityMedium: lipgloss.Color("#B45309"),
		PriorityLow:    lipgloss.Color("#1D4ED8"),
		PriorityNone:   lipgloss.Color("#4B5563"),
	}
}

// GetPalette returns the color palette for the given built-in theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeLight:
		return LightPalette()
	default:
		return DefaultPalette()
	}
}

// PriorityColor returns the palette color for a ticket priority.
// Values outside the 0-4 scale use PriorityNone.
func (p *ColorPalette) PriorityColor(priority int) lipgloss.Color {
	switch priority {
	case 4:
		return p.PriorityUrgent
	case 3:
		return p.PriorityHigh
	case 2:
		return p.PriorityMedium
	case 1:
		return p.PriorityLow
	default:
		return p.PriorityNone
	}
}
