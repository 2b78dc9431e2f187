package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_missingFileDefaults(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	s, err := LoadSettings("", home)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Store.Driver != "json" || s.Log.Level != "warn" {
		t.Fatalf("defaults: got %+v", s)
	}
	if s.ProjectsDir != filepath.Join(home, "projects") {
		t.Fatalf("ProjectsDir: got %q", s.ProjectsDir)
	}
}

func TestLoadSettings_yaml(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	body := "store:\n  driver: sqlite\nlog:\n  level: debug\nprojects_dir: repos\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings("", home)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Store.Driver != "sqlite" || s.Log.Level != "debug" {
		t.Fatalf("yaml: got %+v", s)
	}
	if s.Log.Format != "text" {
		t.Fatalf("unset field should keep default, got %q", s.Log.Format)
	}
	if s.ProjectsDir != filepath.Join(home, "repos") {
		t.Fatalf("relative projects_dir: got %q", s.ProjectsDir)
	}
}

func TestLoadSettings_toml(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	body := "projects_dir = \"/srv/repos\"\n\n[store]\ndriver = \"postgres\"\ndsn = \"postgres://localhost/rooster\"\n\n[log]\nformat = \"json\"\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings("", home)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Store.Driver != "postgres" || s.Store.DSN != "postgres://localhost/rooster" {
		t.Fatalf("toml store: got %+v", s.Store)
	}
	if s.Log.Format != "json" || s.ProjectsDir != "/srv/repos" {
		t.Fatalf("toml: got %+v", s)
	}
}

func TestLoadSettings_yamlWinsOverToml(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	_ = os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store:\n  driver: sqlite\n"), 0o644)
	_ = os.WriteFile(filepath.Join(home, "config.toml"), []byte("[store]\ndriver = \"postgres\"\n"), 0o644)
	s, err := LoadSettings("", home)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Store.Driver != "sqlite" {
		t.Fatalf("driver: got %q, want sqlite", s.Store.Driver)
	}
}

func TestLoadSettings_explicitPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	_ = os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644)
	s, err := LoadSettings(path, t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Log.Level != "info" {
		t.Fatalf("level: got %q", s.Log.Level)
	}
}

func TestLoadSettings_explicitPathMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadSettings_malformed(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	_ = os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store: [unclosed\n"), 0o644)
	if _, err := LoadSettings("", home); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveSettings_roundTrip(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	want := DefaultSettings(home)
	want.Store.Driver = "sqlite"
	if HasSettingsFile(home) {
		t.Fatal("fresh home should have no settings file")
	}
	path, err := SaveSettings(home, want)
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if filepath.Base(path) != "config.yaml" || !HasSettingsFile(home) {
		t.Fatalf("SaveSettings path: %q", path)
	}
	got, err := LoadSettings("", home)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
}

func TestSettingsFrom(t *testing.T) {
	t.Parallel()
	ctx := WithHome(context.Background(), Home{Dir: "/h"})
	if got := SettingsFrom(ctx); got.Store.Driver != "json" {
		t.Fatalf("SettingsFrom default: got %+v", got)
	}
	s := DefaultSettings("/h")
	s.Store.Driver = "sqlite"
	ctx = WithSettings(ctx, s)
	if got := SettingsFrom(ctx); got.Store.Driver != "sqlite" {
		t.Fatalf("SettingsFrom: got %+v", got)
	}
}
