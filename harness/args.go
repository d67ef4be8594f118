package harness

import "github.com/weiihann/prizebench/internal/cli"

// Flags recognised before the command starts.
const (
	flagNoTaskset = "--no-taskset"
	flagNoTime    = "--no-time"
	separator     = "--"
)

// Invocation is the parsed form of the harness command line.
type Invocation struct {
	Command    []string
	SingleCore bool
	UseTime    bool
	// Help is set when usage should be printed instead of running anything.
	Help bool
}

// ParseArgs scans args in two phases. The flag phase consumes --no-taskset,
// --no-time and an optional "--" separator; the first token that is none of
// these starts the passthrough phase, in which every remaining token is
// copied into Command verbatim.
func ParseArgs(args []string) Invocation {
	inv := Invocation{SingleCore: true, UseTime: true}

	if cli.WantsHelp(args) {
		inv.Help = true

		return inv
	}

	cmdStart := len(args)

scan:
	for i, a := range args {
		switch a {
		case flagNoTaskset:
			inv.SingleCore = false
		case flagNoTime:
			inv.UseTime = false
		case separator:
			cmdStart = i + 1

			break scan
		default:
			cmdStart = i

			break scan
		}
	}

	if cmdStart < len(args) {
		inv.Command = append([]string(nil), args[cmdStart:]...)
	}

	if len(inv.Command) == 0 {
		inv.Help = true
	}

	return inv
}
