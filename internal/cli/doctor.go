package cli

import (
	"errors"
	"fmt"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/git"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Verify runtime dependencies and the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := config.HomeFrom(cmd.Context())
			settings := config.SettingsFrom(cmd.Context())
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "home: %s (from %s)\n", home.Dir, home.Source)

			var problems []string

			// git is only needed for projects created with --repo-url.
			if v, err := git.Version(cmd.Context()); err != nil {
				problems = append(problems, "missing dependency: git (not found on PATH)")
			} else {
				_, _ = fmt.Fprintf(out, "git: %s\n", v)
			}

			st, err := openStore(cmd.Context())
			if err != nil {
				problems = append(problems, fmt.Sprintf("store (%s): %v", settings.Store.Driver, err))
			} else {
				_ = st.Close()
				_, _ = fmt.Fprintf(out, "store: %s\n", settings.Store.Driver)
			}

			if len(problems) > 0 {
				for _, p := range problems {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), p)
				}
				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "ok")
			return nil
		},
	}
	return cmd
}
