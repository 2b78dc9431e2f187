package cli

import (
	"github.com/marts9182/Rooster-AI-Project-Management/internal/tui"
	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	var projectID string
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			return tui.NewBoard(st, projectID).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "Only show tasks of this project")
	return cmd
}
