package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// cli holds state shared by all subcommands.
type cli struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "scalargrad",
		Short:         "Scalar reverse-mode autodiff and a tiny MLP trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(),
		newNeuronCmd(),
		newTrainCmd(c),
		newEvalCmd(c),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scalargrad %s\n", version)
		},
	}
}
