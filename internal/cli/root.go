package cli

import (
	"log/slog"
	"os"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/board"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/config"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/logging"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/otel"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	home            string
	configPath      string
	logLevel        string
	logFormat       string
	metricsTextfile string
}

func NewRootCmd(version string) *cobra.Command {
	var (
		opts    rootOptions
		metrics *otel.Provider
	)

	cmd := &cobra.Command{
		Use:           "rooster",
		Short:         "Rooster: a project board worked by a team of AI agent personas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.ResolveHome(opts.home)
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings(opts.configPath, home.Dir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				settings.Log.Level = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				settings.Log.Format = opts.logFormat
			}
			logger, err := logging.New(settings.Log.Level, settings.Log.Format, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			ctx := config.WithHome(cmd.Context(), home)
			ctx = config.WithSettings(ctx, settings)
			if opts.metricsTextfile != "" {
				metrics, err = otel.InitMeterProvider(ctx, "rooster")
				if err != nil {
					return err
				}
			}
			cmd.SetContext(ctx)
			slog.Debug("resolved home", "home", home.Dir, "source", home.Source, "driver", settings.Store.Driver)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if metrics == nil {
				return nil
			}
			defer func() { _ = metrics.Shutdown(cmd.Context()) }()
			// After nuke the home is gone; opening the store would recreate it.
			if _, err := os.Stat(config.MustHomeFrom(cmd.Context())); err == nil {
				st, err := openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = st.Close() }()
				if err := otel.RegisterLaneGauge(metrics, board.NewTasks(st).CountByLane); err != nil {
					return err
				}
			}
			return metrics.WriteTextfile(opts.metricsTextfile)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.home, "home", "", "Override Rooster home directory (default: ROOSTER_HOME, then ./.rooster if present, then ~/.rooster)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Settings file (default: <home>/config.yaml or <home>/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the command")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newProjectCmd())
	cmd.AddCommand(newTaskCmd())
	cmd.AddCommand(newAgentCmd())
	cmd.AddCommand(newRouteCmd())
	cmd.AddCommand(newBoardCmd())
	cmd.AddCommand(newNukeCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}
