package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/testutil"
)

// setupConfigEnv points the config directory at a temp dir and resets viper.
func setupConfigEnv(t *testing.T) string {
	t.Helper()

	dir := testutil.IsolateConfig(t)
	viper.Reset()
	appconfig.SetDefaults()
	t.Cleanup(viper.Reset)
	return dir
}

// run executes a RunE function against a fresh command capturing its output.
func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := fn(cmd, args)
	return buf.String(), err
}

func TestRunConfigInit(t *testing.T) {
	dir := setupConfigEnv(t)

	if _, err := run(t, runConfigInit); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	for _, want := range []string{"# Kanban board configuration", "# Where tickets and users are loaded from", "default_group_by: status", "show_tags: true"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config file missing %q:\n%s", want, data)
		}
	}

	// the generated file must load back into the defaults
	viper.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	cfg, err := appconfig.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *appconfig.Default() {
		t.Errorf("loaded config = %+v, want defaults", cfg)
	}

	if _, err := run(t, runConfigInit); err == nil {
		t.Error("second init should fail because the file exists")
	}
}

func TestRenderConfigYAML(t *testing.T) {
	data, err := renderConfigYAML(sections(appconfig.Default()))
	if err != nil {
		t.Fatal(err)
	}

	var parsed map[string]map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("rendered YAML does not parse: %v\n%s", err, data)
	}
	if got := parsed["tui"]["column_width"]; got != 0 {
		t.Errorf("tui.column_width = %v, want 0", got)
	}
	if got := parsed["storage"]["key"]; got != appconfig.DefaultStorageKey {
		t.Errorf("storage.key = %v", got)
	}
}

func TestRunConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		want    any
	}{
		{name: "string", key: "view.default_group_by", value: "user", want: "user"},
		{name: "int", key: "tui.column_width", value: "32", want: 32},
		{name: "bool", key: "logging.enabled", value: "true", want: true},
		{name: "unknown key", key: "tui.colour", value: "x", wantErr: true},
		{name: "bad bool", key: "tui.show_tags", value: "yes", wantErr: true},
		{name: "bad int", key: "source.timeout_seconds", value: "soon", wantErr: true},
		{name: "fails validation", key: "view.default_group_by", value: "tag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupConfigEnv(t)

			out, err := run(t, runConfigSet, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("runConfigSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if _, statErr := os.Stat(filepath.Join(dir, "config.yaml")); statErr == nil {
					t.Error("rejected value should not be written")
				}
				return
			}

			if got := viper.Get(tt.key); got != tt.want {
				t.Errorf("viper.Get(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if !strings.Contains(out, "Config saved to") {
				t.Errorf("output = %q", out)
			}
		})
	}
}

func TestRunConfigSet_RejectedValueRestored(t *testing.T) {
	setupConfigEnv(t)

	if _, err := run(t, runConfigSet, "view.default_sort_order", "created"); err == nil {
		t.Fatal("expected validation error")
	}
	if got := viper.GetString("view.default_sort_order"); got != "priority" {
		t.Errorf("view.default_sort_order = %q after rejected set, want priority", got)
	}
}

func TestRunConfigReset(t *testing.T) {
	setupConfigEnv(t)
	viper.Set("tui.theme", "nord")
	viper.Set("tui.column_width", 30)

	if _, err := run(t, runConfigReset, "tui.theme"); err != nil {
		t.Fatalf("reset key: %v", err)
	}
	if got := viper.GetString("tui.theme"); got != "default" {
		t.Errorf("tui.theme = %q, want default", got)
	}
	if got := viper.GetInt("tui.column_width"); got != 30 {
		t.Errorf("resetting one key changed tui.column_width to %d", got)
	}

	if _, err := run(t, runConfigReset); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	if got := viper.GetInt("tui.column_width"); got != 0 {
		t.Errorf("tui.column_width = %d after reset, want 0", got)
	}

	if _, err := run(t, runConfigReset, "nope.key"); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestRunConfigShow(t *testing.T) {
	setupConfigEnv(t)
	viper.Set("view.locale", "de")

	out, err := run(t, runConfigShow)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(none - using defaults)", "source:", "  url: " + appconfig.DefaultURL, "  locale: de", "logging:"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Problems:") {
		t.Errorf("valid config reported problems:\n%s", out)
	}

	viper.Set("tui.column_width", 3)
	out, _ = run(t, runConfigShow)
	if !strings.Contains(out, "Problems:") {
		t.Errorf("invalid column width not reported:\n%s", out)
	}
}

func TestRunConfigPath(t *testing.T) {
	dir := setupConfigEnv(t)

	out, err := run(t, runConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, filepath.Join(dir, "config.yaml")) || !strings.Contains(out, "KANBAN_") {
		t.Errorf("path output = %q", out)
	}
}
