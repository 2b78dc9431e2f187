// Package roster looks up agents on the persisted roster and seeds the default team.
package roster

import (
	"context"
	"fmt"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Directory answers agent lookups from the store. Every call reads the current roster.
type Directory struct {
	Store *store.Store
}

// New returns a Directory over st.
func New(st *store.Store) *Directory {
	return &Directory{Store: st}
}

// FindByID returns the agent with id, or nil.
func (d *Directory) FindByID(ctx context.Context, id string) (*models.Agent, error) {
	return d.Store.GetAgent(ctx, id)
}

// FindByRole returns the first agent in roster order with the given role, or nil.
// Duplicate roles are not detected; the earliest stored agent wins. Unknown roles are an error.
func (d *Directory) FindByRole(ctx context.Context, role models.Role) (*models.Agent, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	agents, err := d.Store.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		if agents[i].Role == role {
			return &agents[i], nil
		}
	}
	return nil, nil
}

// Seed saves the default agents, overwriting any stored agent with the same id.
func (d *Directory) Seed(ctx context.Context) ([]models.Agent, error) {
	agents := DefaultAgents()
	for _, a := range agents {
		if err := d.Store.SaveAgent(ctx, a); err != nil {
			return nil, err
		}
	}
	return agents, nil
}

// ListByRole returns every agent with the given role, in roster order.
func (d *Directory) ListByRole(ctx context.Context, role models.Role) ([]models.Agent, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	agents, err := d.Store.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

// EnsureSeeded seeds the roster only when it is empty. It reports whether seeding happened.
func (d *Directory) EnsureSeeded(ctx context.Context) (bool, error) {
	agents, err := d.Store.ListAgents(ctx)
	if err != nil {
		return false, err
	}
	if len(agents) > 0 {
		return false, nil
	}
	if _, err := d.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}
