package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// openStore opens the record store configured for the command's home.
func openStore(ctx context.Context) (*store.Store, error) {
	home := config.MustHomeFrom(ctx)
	s := config.SettingsFrom(ctx)
	return store.OpenWithOptions(store.OpenOptions{
		Driver: s.Store.Driver,
		Home:   home,
		DSN:    s.Store.DSN,
	})
}

// agentLabel returns "Name (Role)" for a stored agent, or "" when the id is unknown.
func agentLabel(ctx context.Context, dir *roster.Directory, id string) (string, error) {
	a, err := dir.FindByID(ctx, id)
	if err != nil || a == nil {
		return "", err
	}
	return a.Label(), nil
}

// printTranscript writes messages as "Name (Role):" blocks. Messages from agents no longer
// on the roster are skipped.
func printTranscript(ctx context.Context, w io.Writer, dir *roster.Directory, msgs []models.Message) error {
	for _, m := range msgs {
		label, err := agentLabel(ctx, dir, m.FromAgent)
		if err != nil {
			return err
		}
		if label == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s:\n  %s\n", label, m.Content)
	}
	return nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
