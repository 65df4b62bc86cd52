package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"timelinecsv/internal/di"
	"timelinecsv/internal/structures"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:           "timelinecsv [root]",
		Short:         "Convert a Takeout Semantic Location History export into CSV reports",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Root = args[0]
			}

			app, err := di.InitApp(flags)
			if err != nil {
				return fmt.Errorf("unable to initialize: %w", err)
			}
			defer app.Close()

			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Enable debug logging")

	return cmd
}
