package cli

import (
	"fmt"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/roster"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the store, seed the default agent team and write default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Initializing Rooster AI Project Management System...")
			_, _ = fmt.Fprintln(out)
			agents, err := roster.New(st).Seed(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "✓ Initialized %d AI agents\n", len(agents))
			home := config.MustHomeFrom(cmd.Context())
			if !config.HasSettingsFile(home) {
				path, err := config.SaveSettings(home, config.SettingsFrom(cmd.Context()))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "✓ Wrote settings to %s\n", path)
			}
			_, _ = fmt.Fprintln(out, "✓ System ready!")
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, "Next steps:")
			_, _ = fmt.Fprintln(out, "  1. Create a project: rooster project create --name 'My Project' --description 'Description'")
			_, _ = fmt.Fprintln(out, "  2. Create a task: rooster task create --project <project-id> --title 'Task' --description 'Description' --auto-assign")
			_, _ = fmt.Fprintln(out, "  3. View agents: rooster agent list")
			_, _ = fmt.Fprintln(out, "  4. View board: rooster task list")
			return nil
		},
	}
	return cmd
}
