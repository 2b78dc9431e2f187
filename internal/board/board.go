// Package board holds the project and task operations behind the CLI and TUI.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/git"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// Checkout clones or refreshes a project repository.
type Checkout interface {
	EnsureCheckout(ctx context.Context, url, path string) error
}

// Projects manages project records and their repository checkouts.
type Projects struct {
	Store       *store.Store
	Checkout    Checkout
	ProjectsDir string
}

// NewProjects returns a Projects service that clones with the git binary.
func NewProjects(st *store.Store, projectsDir string) *Projects {
	return &Projects{Store: st, Checkout: git.Checkouts{}, ProjectsDir: projectsDir}
}

// Create saves a new project. With a repo URL the repository is checked out first
// under <ProjectsDir>/<id>; a failed checkout leaves nothing saved.
func (p *Projects) Create(ctx context.Context, name, description, repoURL string) (models.Project, error) {
	proj := models.Project{
		ID:          store.NewID("proj"),
		Name:        name,
		Description: description,
		CreatedAt:   p.Store.Clock(),
	}
	if repoURL != "" {
		path := git.CheckoutPath(p.ProjectsDir, proj.ID)
		if err := p.Checkout.EnsureCheckout(ctx, repoURL, path); err != nil {
			return models.Project{}, fmt.Errorf("checkout %s: %w", repoURL, err)
		}
		proj.RepoURL = models.Ptr(repoURL)
		proj.RepoPath = models.Ptr(path)
	}
	if err := p.Store.SaveProject(ctx, proj); err != nil {
		return models.Project{}, err
	}
	slog.Info("project created", "project_id", proj.ID, "repo", repoURL)
	return proj, nil
}

// Get returns the project or nil.
func (p *Projects) Get(ctx context.Context, id string) (*models.Project, error) {
	return p.Store.GetProject(ctx, id)
}

// List returns all projects.
func (p *Projects) List(ctx context.Context) ([]models.Project, error) {
	return p.Store.ListProjects(ctx)
}

// Delete removes the project record, reporting whether it existed. Tasks stay. With purge the
// repository checkout is removed as well; otherwise it stays on disk.
func (p *Projects) Delete(ctx context.Context, id string, purge bool) (bool, error) {
	proj, err := p.Store.GetProject(ctx, id)
	if err != nil || proj == nil {
		return false, err
	}
	if err := p.Store.DeleteProject(ctx, id); err != nil {
		return false, err
	}
	if purge && proj.RepoPath != nil {
		if err := git.RemoveCheckout(*proj.RepoPath); err != nil {
			return true, fmt.Errorf("remove checkout %s: %w", *proj.RepoPath, err)
		}
		slog.Info("checkout removed", "project_id", id, "path", *proj.RepoPath)
	}
	return true, nil
}

// Commit returns the commit checked out for the project, or "" when it has no checkout.
func (p *Projects) Commit(ctx context.Context, proj models.Project) (string, error) {
	if proj.RepoPath == nil || !git.IsCheckout(*proj.RepoPath) {
		return "", nil
	}
	return git.Head(ctx, *proj.RepoPath)
}
