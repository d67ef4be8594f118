// Package main provides the sizer command, which reports the combined size
// of a compressor and its archive against the record thresholds.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/prizebench/internal/cli"
	"github.com/weiihann/prizebench/report"
	"github.com/weiihann/prizebench/sizer"
)

const usage = `Usage: sizer [--L=N] [--L1=N] [--json] <comp> <archive>

Compute S1, S2, and S = S1 + S2 (bytes). L is the current record to beat; L1 is the ≥1% improvement threshold.

Options:
  --L=N       Record to beat (bytes). Default: 110793128
  --L1=N      ≥1% improvement threshold (bytes). Default: 109685196
  --json      Output JSON instead of text
  -h, --help  Show this help and exit 0

Examples:
  sizer comp archive
  sizer --json --L=110793128 --L1=109685196 comp archive
`

func main() {
	logger := cli.NewLogger(slog.LevelWarn)

	root := newRootCmd(logger, sizer.DefaultThresholds())
	err := cli.Execute(context.Background(), root, os.Args[1:])
	if code := cli.Finish(logger, err); code != 0 {
		os.Exit(code)
	}
}

func newRootCmd(logger *slog.Logger, defaults sizer.Thresholds) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "sizer [--L=N] [--L1=N] [--json] <comp> <archive>",
		Short:              "Compare compressor plus archive size against the record",
		Long:               usage,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cli.NoCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sizer.ParseArgs(args, defaults)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)

				return &cli.ExitError{Code: 2, Err: err}
			}

			if opts.Help {
				return cmd.Help()
			}

			r, err := sizer.Measure(opts)
			if err != nil {
				for _, statErr := range sizer.StatErrors(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", statErr)
				}

				return &cli.ExitError{Code: 1, Err: err}
			}

			logger.DebugContext(cmd.Context(), "measured",
				slog.Int64("size", r.S),
				slog.Bool("pass_record", r.PassRecord),
				slog.Bool("pass_prize_1pct", r.PassPrize),
			)

			if opts.JSON {
				if err := report.GenerateJSON(cmd.OutOrStdout(), r); err != nil {
					return fmt.Errorf("generate JSON report: %w", err)
				}

				return nil
			}

			if err := report.Generate(cmd.OutOrStdout(), r); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			return nil
		},
	}

	cmd.SetHelpTemplate(cli.HelpTemplate)

	return cmd
}
