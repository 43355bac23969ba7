package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/noman/internal/config"
)

const home = "/home/tester"

func writeConfig(t *testing.T, fs afero.Fs, data map[string]any) string {
	t.Helper()

	path := config.GetConfigPath(home)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := afero.WriteFile(fs, path, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := config.Load(fs, config.GetConfigPath(home), home, false)
	if err != nil {
		t.Fatalf("expected defaults when config is missing: %v", err)
	}

	if want := filepath.Join(home, ".noman"); cfg.NotesDir != want {
		t.Fatalf("expected notes dir %q, got %q", want, cfg.NotesDir)
	}
	if cfg.Recursive || cfg.Render {
		t.Fatalf("expected recursion and rendering off by default, got %+v", cfg)
	}
	if cfg.Style != "dark" || cfg.WordWrap != 100 {
		t.Fatalf("unexpected render defaults: %+v", cfg)
	}
}

func TestLoadMissingRequiredFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := config.Load(fs, "/etc/noman.yaml", home, true)

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error for a missing explicit config, got %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, map[string]any{
		"notes_dir": "~/cheats",
		"recursive": true,
		"style":     "dracula",
		"word_wrap": 72,
	})

	cfg, err := config.Load(fs, path, home, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join(home, "cheats"); cfg.NotesDir != want {
		t.Fatalf("expected expanded notes dir %q, got %q", want, cfg.NotesDir)
	}
	if !cfg.Recursive {
		t.Fatalf("expected recursive to be read from file")
	}
	if cfg.Style != "dracula" || cfg.WordWrap != 72 {
		t.Fatalf("unexpected render settings: %+v", cfg)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := config.GetConfigPath(home)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(fs, path, home, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NotesDir != config.DefaultNotesDir(home) {
		t.Fatalf("expected default notes dir, got %q", cfg.NotesDir)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := config.GetConfigPath(home)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte("recursive: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := config.Load(fs, path, home, false)

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoadRejectsUnknownStyle(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, map[string]any{"style": "sepia"})

	_, err := config.Load(fs, path, home, false)

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error for an unknown style, got %v", err)
	}
}

func TestOverlayPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, map[string]any{
		"notes_dir": "/srv/from-file",
		"style":     "light",
	})

	cfg, err := config.Load(fs, path, home, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("NOMAN_NOTES_DIR", "/srv/from-env")
	t.Setenv("NOMAN_RECURSIVE", "true")

	flags := pflag.NewFlagSet("noman", pflag.ContinueOnError)
	flags.String("dir", "", "")
	flags.Bool(config.KeyRecursive, false, "")
	if err := flags.Parse([]string{"--dir", "/srv/from-flag"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	v := config.NewViper()
	if err := v.BindPFlag(config.KeyNotesDir, flags.Lookup("dir")); err != nil {
		t.Fatalf("failed to bind flags: %v", err)
	}
	if err := v.BindPFlag(config.KeyRecursive, flags.Lookup(config.KeyRecursive)); err != nil {
		t.Fatalf("failed to bind flags: %v", err)
	}

	if err := cfg.Overlay(v, home); err != nil {
		t.Fatalf("unexpected overlay error: %v", err)
	}

	if cfg.NotesDir != "/srv/from-flag" {
		t.Fatalf("expected flag to win, got %q", cfg.NotesDir)
	}
	if !cfg.Recursive {
		t.Fatalf("expected environment to enable recursion")
	}
	if cfg.Style != "light" {
		t.Fatalf("expected file value to survive the overlay, got %q", cfg.Style)
	}
}

func TestEnvironmentKeyMatchesFileKey(t *testing.T) {
	if config.KeyNotesDir != "notes_dir" {
		t.Fatalf("expected the notes directory key to match the file key, got %q", config.KeyNotesDir)
	}

	cfg := config.Default(home)
	t.Setenv("NOMAN_PATH", "/srv/stale")
	if err := cfg.Overlay(config.NewViper(), home); err != nil {
		t.Fatalf("unexpected overlay error: %v", err)
	}
	if cfg.NotesDir != config.DefaultNotesDir(home) {
		t.Fatalf("expected NOMAN_PATH to be ignored, got %q", cfg.NotesDir)
	}
}

func TestOverlayEnvironmentOverFile(t *testing.T) {
	cfg := config.Default(home)
	t.Setenv("NOMAN_NOTES_DIR", "~/env-notes")

	if err := cfg.Overlay(config.NewViper(), home); err != nil {
		t.Fatalf("unexpected overlay error: %v", err)
	}
	if want := filepath.Join(home, "env-notes"); cfg.NotesDir != want {
		t.Fatalf("expected %q, got %q", want, cfg.NotesDir)
	}
}
