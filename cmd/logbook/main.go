package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/logbook/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "logbook: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "logbook [file...]",
		Short: "Browse and filter log records in the terminal",
		Long: `logbook keeps a bounded, in-memory history of log records and shows them
in a filterable terminal view. Records come from followed log files, the
built-in demo emitter, and lines typed into the input field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Sources = append(opts.Sources, args...)
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default is $HOME/.config/logbook/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default is $HOME/.config/logbook/prefs.toml)")
	flags.StringArrayVarP(&opts.Sources, "source", "s", nil, "log file to follow (repeatable)")
	flags.BoolVar(&opts.Demo, "demo", false, "emit sample records")

	return cmd
}
