package cli

import (
	"fmt"
	"time"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/board"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

func newProjectCreateCmd() *cobra.Command {
	var (
		name        string
		description string
		repoURL     string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project, optionally cloning its repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			projects := board.NewProjects(st, config.SettingsFrom(cmd.Context()).ProjectsDir)
			proj, err := projects.Create(cmd.Context(), name, description, repoURL)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created project: %s (%s)\n", proj.Name, proj.ID)
			if proj.RepoPath != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Repository cloned to: %s\n", *proj.RepoPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&repoURL, "repo-url", "", "Git repository URL to clone")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newProjectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			projects, err := st.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(out, "No projects found.")
				return nil
			}
			_, _ = fmt.Fprintln(out, "\nProjects:")
			for _, p := range projects {
				_, _ = fmt.Fprintf(out, "  ● %s (%s)\n", p.Name, p.ID)
				_, _ = fmt.Fprintf(out, "    %s\n", p.Description)
				if p.RepoURL != nil {
					_, _ = fmt.Fprintf(out, "    Repository: %s\n", *p.RepoURL)
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
	return cmd
}

func newProjectShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			p, err := st.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p == nil {
				_, _ = fmt.Fprintf(out, "✗ Project not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(out, "\nProject: %s\n", p.Name)
			_, _ = fmt.Fprintf(out, "ID: %s\n", p.ID)
			_, _ = fmt.Fprintf(out, "Description: %s\n", p.Description)
			if p.RepoURL != nil {
				_, _ = fmt.Fprintf(out, "Repository: %s\n", *p.RepoURL)
				_, _ = fmt.Fprintf(out, "Path: %s\n", models.Deref(p.RepoPath))
				commit, err := board.NewProjects(st, "").Commit(cmd.Context(), *p)
				if err != nil {
					return err
				}
				if commit != "" {
					_, _ = fmt.Fprintf(out, "Commit: %s\n", commit)
				}
			}
			_, _ = fmt.Fprintf(out, "Created: %s\n", p.CreatedAt.Format(time.RFC3339))

			tasks, err := st.ListTasks(cmd.Context(), p.ID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "\nTasks: %d\n", len(tasks))
			return nil
		},
	}
	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	var purge bool
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project record (its tasks are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ok, err := board.NewProjects(st, "").Delete(cmd.Context(), args[0], purge)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Project not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted project %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "Also remove the project's repository checkout")
	return cmd
}
