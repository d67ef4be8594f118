// Package main provides the harness command, which runs a benchmark command
// pinned to one CPU core and wrapped with /usr/bin/time -v.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/prizebench/harness"
	"github.com/weiihann/prizebench/internal/cli"
)

const usage = `Usage: harness [--no-taskset] [--no-time] -- <cmd...>

Runs a command pinned to a single CPU core (taskset -c 0 if available) and optionally wrapped with /usr/bin/time -v.

Options:
  --no-taskset   Do not enforce single core
  --no-time      Do not wrap with /usr/bin/time -v
  -h, --help     Show this help and exit 0

Examples:
  harness -- ./comp enwik9 archive
  harness --no-time -- ./archive
`

func main() {
	logger := cli.NewLogger(slog.LevelWarn)

	root := newRootCmd(logger, harness.SystemProber{})
	err := cli.Execute(context.Background(), root, os.Args[1:])
	if code := cli.Finish(logger, err); code != 0 {
		os.Exit(code)
	}
}

func newRootCmd(logger *slog.Logger, prober harness.Prober) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "harness [--no-taskset] [--no-time] [--] <cmd...>",
		Short:              "Run a command pinned to one core and timed",
		Long:               usage,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cli.NoCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := harness.ParseArgs(args)
			if inv.Help {
				return cmd.Help()
			}

			cfg := harness.WrapCommand(prober.Probe(), inv)

			runner := harness.NewRunner(
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger,
			)

			result, err := runner.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if result.ExitCode != 0 {
				return &cli.ExitError{Code: result.ExitCode}
			}

			return nil
		},
	}

	cmd.SetHelpTemplate(cli.HelpTemplate)

	return cmd
}
