package harness

import "os/exec"

// Tool locations used for wrapping.
const (
	TasksetBinary = "taskset"
	TimeBinary    = "/usr/bin/time"
)

// Capabilities describes which wrapping tools the host provides.
type Capabilities struct {
	Taskset bool
	Time    bool
}

// Prober discovers host capabilities. Tests substitute a fixed value.
type Prober interface {
	Probe() Capabilities
}

// ProberFunc adapts a plain function to Prober.
type ProberFunc func() Capabilities

// Probe calls f.
func (f ProberFunc) Probe() Capabilities {
	return f()
}

// SystemProber checks the real host: taskset on PATH and an executable
// /usr/bin/time.
type SystemProber struct{}

// Probe implements Prober.
func (SystemProber) Probe() Capabilities {
	_, err := exec.LookPath(TasksetBinary)

	return Capabilities{
		Taskset: err == nil,
		Time:    isExecutable(TimeBinary),
	}
}

// Prefix returns the wrapper tokens that go in front of the user command.
// taskset always precedes time when both apply.
func Prefix(caps Capabilities, inv Invocation) []string {
	var prefix []string

	if inv.SingleCore && caps.Taskset {
		prefix = append(prefix, TasksetBinary, "-c", "0")
	}

	if inv.UseTime && caps.Time {
		prefix = append(prefix, TimeBinary, "-v")
	}

	return prefix
}

// CommandConfig is the fully resolved child process command line.
type CommandConfig struct {
	Binary string
	Args   []string
}

// Argv returns Binary followed by Args.
func (c CommandConfig) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Binary)

	return append(argv, c.Args...)
}

// WrapCommand joins the prefix for caps with the invocation's command.
// inv.Command must not be empty.
func WrapCommand(caps Capabilities, inv Invocation) CommandConfig {
	prefix := Prefix(caps, inv)

	argv := make([]string, 0, len(prefix)+len(inv.Command))
	argv = append(argv, prefix...)
	argv = append(argv, inv.Command...)

	return CommandConfig{Binary: argv[0], Args: argv[1:]}
}
