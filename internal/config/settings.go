package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings is the optional per-home configuration file.
type Settings struct {
	Store       StoreSettings `yaml:"store" toml:"store"`
	ProjectsDir string        `yaml:"projects_dir" toml:"projects_dir"`
	Log         LogSettings   `yaml:"log" toml:"log"`
}

// StoreSettings selects the record store backend.
type StoreSettings struct {
	Driver string `yaml:"driver" toml:"driver"`
	DSN    string `yaml:"dsn" toml:"dsn"`
}

// LogSettings configures the default slog handler.
type LogSettings struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings(home string) Settings {
	return Settings{
		Store:       StoreSettings{Driver: "json"},
		ProjectsDir: Home{Dir: home}.ProjectsDir(),
		Log:         LogSettings{Level: "warn", Format: "text"},
	}
}

// LoadSettings reads path, or the first existing candidate under home when path is empty.
// Values missing from the file keep their defaults. No file at all yields DefaultSettings.
func LoadSettings(path, home string) (Settings, error) {
	s := DefaultSettings(home)
	if path == "" {
		for _, c := range (Home{Dir: home}).SettingsFiles() {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
		if path == "" {
			return s, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return s, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if s.ProjectsDir != "" && !filepath.IsAbs(s.ProjectsDir) {
		s.ProjectsDir = filepath.Join(home, s.ProjectsDir)
	}
	return s, nil
}

// SaveSettings writes s as YAML to <home>/config.yaml and returns the path.
func SaveSettings(home string, s Settings) (string, error) {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	path := (Home{Dir: home}).SettingsFiles()[0]
	return path, os.WriteFile(path, data, 0o644)
}

// HasSettingsFile reports whether home already holds a config.yaml or config.toml.
func HasSettingsFile(home string) bool {
	for _, f := range (Home{Dir: home}).SettingsFiles() {
		if _, err := os.Stat(f); err == nil {
			return true
		}
	}
	return false
}

type settingsKey struct{}

// WithSettings stores loaded settings in the context.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFrom returns settings from the context, or defaults for the context's home.
func SettingsFrom(ctx context.Context) Settings {
	if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
		return s
	}
	h, _ := HomeFrom(ctx)
	return DefaultSettings(h.Dir)
}
