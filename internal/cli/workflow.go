package cli

import (
	"fmt"
	"strings"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/router"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/workflow"
	"github.com/spf13/cobra"
)

func newTaskSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <task-id>",
		Short: "Play out the team conversation for a task",
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
			eng := workflow.New(st)
			_, _ = fmt.Fprintln(out, "Simulating agent collaboration...")
			msgs, err := eng.Simulate(ctx, *t)
			if perr := printTranscript(ctx, out, eng.Roster, msgs); perr != nil {
				return perr
			}
			return err
		},
	}
	return cmd
}

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <description>",
		Short: "Show which role a task description routes to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := strings.Join(args, " ")
			set, keyword, ok := router.Match(desc)
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (default, no keyword matched)\n", router.DefaultRole)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (matched %q)\n", set.Role(), keyword)
			return nil
		},
	}
	return cmd
}
