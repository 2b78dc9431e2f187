package cli

import (
	"fmt"
	"strings"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
	"github.com/spf13/cobra"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Inspect the agent team",
	}
	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentShowCmd())
	return cmd
}

func newAgentListCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents (seeds the default team when the roster is empty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter models.Role
			if role != "" {
				r, err := models.ParseRole(role)
				if err != nil {
					return err
				}
				filter = r
			}
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			dir := roster.New(st)
			seeded, err := dir.EnsureSeeded(ctx)
			if err != nil {
				return err
			}
			if seeded {
				_, _ = fmt.Fprintln(out, "Initializing default agents...")
			}
			var agents []models.Agent
			if filter != "" {
				agents, err = dir.ListByRole(ctx, filter)
			} else {
				agents, err = st.ListAgents(ctx)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, "\nAI Agent Team:")
			_, _ = fmt.Fprintln(out)
			for _, a := range agents {
				_, _ = fmt.Fprintf(out, "● %s - %s (%s)\n", a.Name, a.Role, a.ID)
				_, _ = fmt.Fprintf(out, "  %s\n", a.Personality)
				_, _ = fmt.Fprintf(out, "  Skills: %s\n", strings.Join(a.Skills, ", "))
				if a.CurrentTask != nil {
					t, err := st.GetTask(ctx, *a.CurrentTask)
					if err != nil {
						return err
					}
					if t != nil {
						_, _ = fmt.Fprintf(out, "  Currently working on: %s\n", t.Title)
					}
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "Only list agents with this role (e.g. QA, \"Tech Lead\")")
	return cmd
}

func newAgentShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <agent-id>",
		Short: "Show an agent's profile and current task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			a, err := roster.New(st).FindByID(ctx, args[0])
			if err != nil {
				return err
			}
			if a == nil {
				_, _ = fmt.Fprintf(out, "✗ Agent not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(out, "\n%s - %s\n", a.Name, a.Role)
			_, _ = fmt.Fprintf(out, "ID: %s\n", a.ID)
			_, _ = fmt.Fprintf(out, "\nPersonality:\n  %s\n", a.Personality)
			_, _ = fmt.Fprintln(out, "\nSkills:")
			for _, s := range a.Skills {
				_, _ = fmt.Fprintf(out, "  • %s\n", s)
			}
			if a.CurrentTask != nil {
				t, err := st.GetTask(ctx, *a.CurrentTask)
				if err != nil {
					return err
				}
				if t != nil {
					_, _ = fmt.Fprintln(out, "\nCurrent Task:")
					_, _ = fmt.Fprintf(out, "  %s (%s)\n", t.Title, t.ID)
					_, _ = fmt.Fprintf(out, "  Status: %s\n", t.Status)
				}
			}
			return nil
		},
	}
	return cmd
}
