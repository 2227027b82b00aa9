package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("LEDIT_CONFIG_HOME", "/tmp/ledit-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/ledit-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/ledit-config")
	}

	t.Setenv("LEDIT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/ledit" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/ledit")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LEDIT_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Fatalf("TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if cfg.Keys["ctrl+w"] != "delete_word" {
		t.Fatalf("ctrl+w = %q, want %q", cfg.Keys["ctrl+w"], "delete_word")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDIT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
tab-width = 8

[theme]
foreground = "#111111"
commandline-background = "#123456"

[keys]
"ctrl+w" = "copy_word"
"ctrl+g" = "delete_word"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Fatalf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.CommandlineBackground != "#123456" {
		t.Fatalf("CommandlineBackground = %q, want %q", cfg.Theme.CommandlineBackground, "#123456")
	}
	// Background untouched by the user file keeps its default.
	if cfg.Theme.Background != "#0A0E14" {
		t.Fatalf("Background = %q, want default", cfg.Theme.Background)
	}
	if cfg.Keys["ctrl+w"] != "copy_word" {
		t.Fatalf("ctrl+w = %q, want %q", cfg.Keys["ctrl+w"], "copy_word")
	}
	if cfg.Keys["ctrl+g"] != "delete_word" {
		t.Fatalf("ctrl+g = %q, want %q", cfg.Keys["ctrl+g"], "delete_word")
	}
	// Unrelated default bindings survive the merge.
	if cfg.Keys["left"] != "move_left" {
		t.Fatalf("left = %q, want %q", cfg.Keys["left"], "move_left")
	}
	// show-stats absent from the user file keeps its default.
	if !cfg.Editor.ShowStats {
		t.Fatalf("ShowStats = false, want default true")
	}
}

func TestLoadShowStatsOff(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDIT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
show-stats = false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.ShowStats {
		t.Fatalf("ShowStats = true, want false")
	}
}

func TestLoadBadToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDIT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "not toml [")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unparsable config")
	}
}
