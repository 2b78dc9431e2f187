package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// HomeSource records which rule picked the home directory.
type HomeSource string

// Home resolution rules, in precedence order.
const (
	HomeFromFlag    HomeSource = "--home"
	HomeFromEnv     HomeSource = "ROOSTER_HOME"
	HomeFromWorkdir HomeSource = "./.rooster"
	HomeFromUser    HomeSource = "~/.rooster"
)

// WorkdirHomeName is the per-project home directory looked up in the working directory.
const WorkdirHomeName = ".rooster"

// Home is the resolved directory holding the board's data, settings and clones.
type Home struct {
	Dir    string
	Source HomeSource
}

// DataDir is where the JSON collections live.
func (h Home) DataDir() string { return filepath.Join(h.Dir, "data") }

// ProjectsDir is the default parent of repository checkouts.
func (h Home) ProjectsDir() string { return filepath.Join(h.Dir, "projects") }

// SettingsFiles returns the settings files LoadSettings tries, in order.
func (h Home) SettingsFiles() []string {
	return []string{
		filepath.Join(h.Dir, "config.yaml"),
		filepath.Join(h.Dir, "config.toml"),
	}
}

// ResolveHome picks the home directory: the --home override, then ROOSTER_HOME, then a
// .rooster directory in the working directory when one exists, then ~/.rooster.
func ResolveHome(override string) (Home, error) {
	if override != "" {
		return Home{Dir: filepath.Clean(override), Source: HomeFromFlag}, nil
	}
	if env := os.Getenv("ROOSTER_HOME"); env != "" {
		return Home{Dir: filepath.Clean(env), Source: HomeFromEnv}, nil
	}
	if wd, err := os.Getwd(); err == nil {
		local := filepath.Join(wd, WorkdirHomeName)
		if fi, err := os.Stat(local); err == nil && fi.IsDir() {
			return Home{Dir: local, Source: HomeFromWorkdir}, nil
		}
	}
	user, err := os.UserHomeDir()
	if err != nil {
		return Home{}, errors.New("could not determine user home directory; set --home or ROOSTER_HOME")
	}
	return Home{Dir: filepath.Join(user, WorkdirHomeName), Source: HomeFromUser}, nil
}

type homeKey struct{}

// WithHome stores the resolved home in the context.
func WithHome(ctx context.Context, h Home) context.Context {
	return context.WithValue(ctx, homeKey{}, h)
}

// HomeFrom returns the resolved home from the context, if set.
func HomeFrom(ctx context.Context) (Home, bool) {
	h, ok := ctx.Value(homeKey{}).(Home)
	return h, ok && h.Dir != ""
}

// MustHomeFrom returns the home directory from the context. Commands run after the root
// command resolved it, so a missing home is a wiring bug.
func MustHomeFrom(ctx context.Context) string {
	if h, ok := HomeFrom(ctx); ok {
		return h.Dir
	}
	panic("rooster home missing from context")
}
