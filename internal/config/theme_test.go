package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tres/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  done: "#00FF00"
`)
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Done != "#00FF00" {
		t.Errorf("Done = %s, want #00FF00", cfg.ColorScheme.Done)
	}
	// Untouched values come from the default preset
	if cfg.ColorScheme.Todo != colors.Default().Todo {
		t.Errorf("Todo = %s, want default %s", cfg.ColorScheme.Todo, colors.Default().Todo)
	}
}

func TestMissingThemeFileIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestMonochromePreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvThemeFile, "")

	cfg := &Config{}
	cfg.ColorScheme.Preset = "monochrome"
	cfg.applyDefaults()

	if cfg.ColorScheme.Accent != colors.Monochrome().Accent {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}
