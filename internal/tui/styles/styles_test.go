package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsBuiltinTheme(name) {
			t.Errorf("IsBuiltinTheme(%q) = false", name)
		}
		p := GetPalette(ThemeName(name))
		if p.Primary == "" || p.PriorityUrgent == "" {
			t.Errorf("palette %q has empty colors: %+v", name, p)
		}
	}
	if IsBuiltinTheme("sparkle") {
		t.Error("IsBuiltinTheme(sparkle) = true")
	}
	if GetPalette("sparkle").Primary != DefaultPalette().Primary {
		t.Error("unknown theme should fall back to the default palette")
	}
}

func TestPriorityColor(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		priority int
		want     string
	}{
		{4, string(p.PriorityUrgent)},
		{3, string(p.PriorityHigh)},
		{2, string(p.PriorityMedium)},
		{1, string(p.PriorityLow)},
		{0, string(p.PriorityNone)},
		{9, string(p.PriorityNone)},
	}
	for _, tt := range tests {
		if got := string(p.PriorityColor(tt.priority)); got != tt.want {
			t.Errorf("PriorityColor(%d) = %s, want %s", tt.priority, got, tt.want)
		}
	}
}

func TestPriorityIcon(t *testing.T) {
	seen := map[string]bool{}
	for p := 0; p <= 4; p++ {
		icon := PriorityIcon(p)
		if icon == "" || seen[icon] {
			t.Errorf("PriorityIcon(%d) = %q is empty or duplicated", p, icon)
		}
		seen[icon] = true
	}
}

func TestNew_NilPalette(t *testing.T) {
	s := New(nil)
	if s.Palette == nil || s.Palette.Primary != DefaultPalette().Primary {
		t.Error("New(nil) should use the default palette")
	}
	if got := s.Title.Render("Board"); !strings.Contains(got, "Board") {
		t.Errorf("Title.Render = %q", got)
	}
}

const validTheme = `name: Paper
version: "1"
colors:
  primary: "#112233"
  secondary: "#445566"
  warning: "#778899"
  error: "#AA0000"
  muted: "#888"
  surface: "#FFFFFF"
  text: "#000000"
  border: "#CCCCCC"
  priority:
    urgent: "#FF0000"
`

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeFile(t *testing.T) {
	theme, err := LoadThemeFile(writeTheme(t, validTheme))
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}
	p := theme.ToPalette()
	if p.Primary != "#112233" || p.PriorityUrgent != "#FF0000" {
		t.Errorf("palette = %+v", p)
	}
	if p.PriorityLow != DefaultPalette().PriorityLow {
		t.Errorf("missing priority color should fall back, got %s", p.PriorityLow)
	}
}

func TestThemeFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing name", strings.Replace(validTheme, "name: Paper", "", 1), "name is required"},
		{"bad version", strings.Replace(validTheme, `version: "1"`, `version: "2"`, 1), "unsupported theme version"},
		{"missing color", strings.Replace(validTheme, `  border: "#CCCCCC"`, "", 1), "'border' is required"},
		{"bad hex", strings.Replace(validTheme, `"#112233"`, `"blue"`, 1), "'primary' has invalid format"},
		{"bad optional hex", strings.Replace(validTheme, `"#FF0000"`, `"#GG0000"`, 1), "'priority.urgent'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadThemeFile(writeTheme(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadThemeFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePalette(t *testing.T) {
	if p, err := ResolvePalette(""); err != nil || p.Primary != DefaultPalette().Primary {
		t.Errorf("ResolvePalette(\"\") = %v, %v", p, err)
	}
	if p, err := ResolvePalette("nord"); err != nil || p.Primary != NordPalette().Primary {
		t.Errorf("ResolvePalette(nord) = %v, %v", p, err)
	}
	if _, err := ResolvePalette("sparkle"); err == nil {
		t.Error("ResolvePalette(sparkle) should fail")
	}
	if p, err := ResolvePalette(writeTheme(t, validTheme)); err != nil || p.Primary != "#112233" {
		t.Errorf("ResolvePalette(file) = %v, %v", p, err)
	}
	if _, err := ResolvePalette("/does/not/exist.yaml"); err == nil {
		t.Error("ResolvePalette on a missing file should fail")
	}
}

func TestIsThemePath(t *testing.T) {
	for in, want := range map[string]bool{
		"nord":            false,
		"mine.yaml":       true,
		"~/t/mine.yml":    true,
		"yaml":            false,
		"/etc/theme.json": false,
	} {
		if got := IsThemePath(in); got != want {
			t.Errorf("IsThemePath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExportTheme_RoundTrip(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			data, err := ExportTheme(name)
			if err != nil {
				t.Fatalf("ExportTheme: %v", err)
			}

			path := filepath.Join(t.TempDir(), name+".yaml")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatal(err)
			}
			tf, err := LoadThemeFile(path)
			if err != nil {
				t.Fatalf("LoadThemeFile: %v", err)
			}
			if err := tf.Validate(); err != nil {
				t.Fatalf("exported theme does not validate: %v", err)
			}
			if got, want := *tf.ToPalette(), *GetPalette(ThemeName(name)); got != want {
				t.Errorf("round trip palette = %+v, want %+v", got, want)
			}
		})
	}

	if _, err := ExportTheme("sparkle"); err == nil {
		t.Error("ExportTheme(sparkle) should fail")
	}
}
