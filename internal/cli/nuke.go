package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/spf13/cobra"
)

func newNukeCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Destroy all Rooster state under the home directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, "WARNING: this will permanently delete all Rooster data.")
			_, _ = fmt.Fprintf(out, "Directory: %s\n", home)
			if !yes {
				_, _ = fmt.Fprintln(out, `Type "delete everything" to confirm:`)
				in := bufio.NewReader(cmd.InOrStdin())
				line, err := in.ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				if strings.TrimSpace(line) != "delete everything" {
					_, _ = fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			if config.SettingsFrom(cmd.Context()).Store.Driver == "postgres" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "note: postgres collections are kept; drop them in the database")
			}

			if err := os.RemoveAll(home); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, "Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
