package cli

import (
	"fmt"
	"time"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/board"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/workflow"
	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
	"github.com/spf13/cobra"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskCreateCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskShowCmd())
	cmd.AddCommand(newTaskMoveCmd())
	cmd.AddCommand(newTaskAssignCmd())
	cmd.AddCommand(newTaskNoteCmd())
	cmd.AddCommand(newTaskDeleteCmd())
	cmd.AddCommand(newTaskSimulateCmd())
	return cmd
}

func newTaskCreateCmd() *cobra.Command {
	var (
		projectID   string
		title       string
		description string
		autoAssign  bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			proj, err := st.GetProject(ctx, projectID)
			if err != nil {
				return err
			}
			if proj == nil {
				_, _ = fmt.Fprintf(out, "✗ Project not found: %s\n", projectID)
				return nil
			}
			task, err := board.NewTasks(st).Create(ctx, projectID, title, description)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "✓ Created task: %s (%s)\n", task.Title, task.ID)
			if !autoAssign {
				return nil
			}

			eng := workflow.New(st)
			agent, err := eng.AssignByRole(ctx, &task)
			if err != nil {
				return err
			}
			if agent == nil {
				return nil
			}
			_, _ = fmt.Fprintf(out, "  Assigned to: %s\n", agent.Label())
			_, _ = fmt.Fprintln(out, "\nSimulating agent collaboration...")
			msgs, err := eng.Simulate(ctx, task)
			if perr := printTranscript(ctx, out, eng.Roster, msgs); perr != nil {
				return perr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().BoolVar(&autoAssign, "auto-assign", false, "Route the task to an agent and simulate the team workflow")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var (
		projectID string
		status    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the task board, grouped by lane",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *models.Status
			if status != "" {
				s, err := models.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = &s
			}
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			tasks, err := board.NewTasks(st).List(ctx, projectID, filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(out, "No tasks found.")
				return nil
			}
			byLane := make(map[models.Status][]models.Task)
			for _, t := range tasks {
				byLane[t.Status] = append(byLane[t.Status], t)
			}
			dir := roster.New(st)
			_, _ = fmt.Fprintln(out, "\nTask Board:")
			for _, lane := range models.Lanes() {
				_, _ = fmt.Fprintf(out, "\n┌─ %s (%d)\n", lane, len(byLane[lane]))
				for _, t := range byLane[lane] {
					assignee := "Unassigned"
					if t.Assignee != nil {
						label, err := agentLabel(ctx, dir, *t.Assignee)
						if err != nil {
							return err
						}
						if label != "" {
							assignee = label
						}
					}
					_, _ = fmt.Fprintf(out, "│ ● %s (%s)\n", t.Title, t.ID)
					_, _ = fmt.Fprintf(out, "│   %s\n", preview(t.Description, models.DefaultTaskPreviewChars))
					_, _ = fmt.Fprintf(out, "│   Assigned to: %s\n", assignee)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "Filter by project ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (TODO, IN_PROGRESS, REVIEW, DONE)")
	return cmd
}

func newTaskShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show task details and its agent conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			t, err := st.GetTask(ctx, args[0])
			if err != nil {
				return err
			}
			if t == nil {
				_, _ = fmt.Fprintf(out, "✗ Task not found: %s\n", args[0])
				return nil
			}
			dir := roster.New(st)
			_, _ = fmt.Fprintf(out, "\nTask: %s\n", t.Title)
			_, _ = fmt.Fprintf(out, "ID: %s\n", t.ID)
			_, _ = fmt.Fprintf(out, "Status: %s\n", t.Status)
			_, _ = fmt.Fprintf(out, "Description: %s\n", t.Description)
			if t.Assignee != nil {
				label, err := agentLabel(ctx, dir, *t.Assignee)
				if err != nil {
					return err
				}
				if label != "" {
					_, _ = fmt.Fprintf(out, "Assigned to: %s\n", label)
				}
			}
			_, _ = fmt.Fprintf(out, "Created: %s\n", t.CreatedAt.Format(time.RFC3339))
			_, _ = fmt.Fprintf(out, "Updated: %s\n", t.UpdatedAt.Format(time.RFC3339))
			if len(t.Notes) > 0 {
				_, _ = fmt.Fprintln(out, "\nNotes:")
				for _, n := range t.Notes {
					_, _ = fmt.Fprintf(out, "  • %s\n", n)
				}
			}

			msgs, err := st.ListMessages(ctx, t.ID, models.DefaultMessageListLimit)
			if err != nil {
				return err
			}
			if len(msgs) > 0 {
				_, _ = fmt.Fprintf(out, "\nAgent Collaboration (%d messages):\n", len(msgs))
				return printTranscript(ctx, out, dir, msgs)
			}
			return nil
		},
	}
	return cmd
}

func newTaskMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to another lane (TODO, IN_PROGRESS, REVIEW, DONE)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseStatus(args[1])
			if err != nil {
				return err
			}
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			t, err := board.NewTasks(st).Move(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			if t == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Task not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Moved task '%s' to %s\n", t.Title, status)
			return nil
		},
	}
	return cmd
}

func newTaskAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <task-id> <agent-id>",
		Short: "Assign a task to an agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			t, err := board.NewTasks(st).Assign(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if t == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Task not found: %s\n", args[0])
				return nil
			}
			agent, err := roster.New(st).FindByID(ctx, args[1])
			if err != nil {
				return err
			}
			if agent != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Assigned task '%s' to %s\n", t.Title, agent.Name)
			}
			return nil
		},
	}
	return cmd
}

func newTaskNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <task-id> <note>",
		Short: "Add a note to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			t, err := board.NewTasks(st).AddNote(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if t == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Task not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added note to task '%s'\n", t.Title)
			return nil
		},
	}
	return cmd
}

func newTaskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ok, err := board.NewTasks(st).Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Task not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted task %s\n", args[0])
			return nil
		},
	}
	return cmd
}
