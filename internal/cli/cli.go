// Package cli holds the pieces shared by the prizebench commands.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// WantsHelp reports whether args is empty or contains -h/--help anywhere.
func WantsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}

	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}

	return false
}

// NewLogger returns a text logger on stderr at the given level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// HelpTemplate is the help template for commands that print their Long text
// verbatim.
const HelpTemplate = "{{.Long}}"

// Execute runs root with args. Cobra registers its hidden completion request
// command even with flag parsing disabled, so args starting with it go
// straight to root's RunE and stay ordinary arguments.
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	if len(args) > 0 &&
		(args[0] == cobra.ShellCompRequestCmd ||
			args[0] == cobra.ShellCompNoDescRequestCmd) {
		root.SetContext(ctx)

		return root.RunE(root, args)
	}

	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// NoCompletion turns off the default completion subcommand so that
// "completion" is an ordinary first argument.
var NoCompletion = cobra.CompletionOptions{DisableDefaultCmd: true}
