package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CheckoutPath returns where a project's repository lives: <projectsDir>/<projectID>.
func CheckoutPath(projectsDir, projectID string) string {
	return filepath.Join(projectsDir, projectID)
}

// IsCheckout reports whether path holds a git working tree.
func IsCheckout(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// EnsureCheckout brings path up to date with url: git pull when path is already a checkout,
// git clone otherwise.
func EnsureCheckout(ctx context.Context, url, path string) error {
	if url == "" || path == "" {
		return fmt.Errorf("repo url and checkout path required")
	}
	if IsCheckout(path) {
		pull := exec.CommandContext(ctx, "git", "pull")
		pull.Dir = path
		if out, err := pull.CombinedOutput(); err != nil {
			return fmt.Errorf("git pull: %w: %s", err, strings.TrimSpace(string(out)))
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	clone := exec.CommandContext(ctx, "git", "clone", url, path)
	if out, err := clone.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Head returns the commit checked out at path.
func Head(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoveCheckout deletes a checkout directory. Empty or missing paths are a no-op.
func RemoveCheckout(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(path)
}

// Version returns `git --version` output; used by doctor.
func Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Checkouts adapts the package functions to the board's checkout interface.
type Checkouts struct{}

// EnsureCheckout implements board.Checkout.
func (Checkouts) EnsureCheckout(ctx context.Context, url, path string) error {
	return EnsureCheckout(ctx, url, path)
}
