package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weiihann/prizebench/internal/cli"
	"github.com/weiihann/prizebench/sizer"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(logger, sizer.DefaultThresholds())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cli.Execute(context.Background(), cmd, args)

	return stdout.String(), stderr.String(), cli.Code(err)
}

func writeFiles(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	comp := filepath.Join(dir, "comp.bin")
	archive := filepath.Join(dir, "archive.bin")

	if err := os.WriteFile(comp, make([]byte, 1000), 0o644); err != nil {
		t.Fatalf("write comp: %v", err)
	}
	if err := os.WriteFile(archive, make([]byte, 2000), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	return comp, archive
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-h"},
		{"--json", "--help", "a", "b"},
		{"only-one"},
		{"a", "b", "c"},
		{"completion", "zsh", "extra"},
		{"__complete", "x", "y"},
	} {
		out, errOut, code := run(t, args...)
		if code != 0 {
			t.Errorf("args %q: exit code = %d, want 0", args, code)
		}
		if out != usage {
			t.Errorf("args %q: output = %q, want usage", args, out)
		}
		if errOut != "" {
			t.Errorf("args %q: stderr = %q, want empty", args, errOut)
		}
	}
}

func TestCompletionWordsAreFiles(t *testing.T) {
	for _, word := range []string{"completion", "__complete"} {
		t.Run(word, func(t *testing.T) {
			out, errOut, code := run(t, word, "bash")

			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if out != "" {
				t.Errorf("stdout = %q, want empty", out)
			}
			if !strings.HasPrefix(errOut, "error: cannot stat "+word+": ") {
				t.Errorf("stderr = %q, want stat error for %s", errOut, word)
			}
			if !strings.Contains(errOut, "error: cannot stat bash: ") {
				t.Errorf("stderr = %q, want stat error for bash", errOut)
			}
		})
	}
}

func TestText(t *testing.T) {
	comp, archive := writeFiles(t)

	out, errOut, code := run(t, comp, archive)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, errOut)
	}

	for _, line := range []string{
		"S1 (comp):    1000 bytes\n",
		"S total:      3000 bytes\n",
		"Status vs record: PASS\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected %q in output", line)
		}
	}
}

func TestJSON(t *testing.T) {
	comp, archive := writeFiles(t)

	out, _, code := run(t, "--json", comp, archive)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var got sizer.Report
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := sizer.Report{
		Comp:       comp,
		Archive:    archive,
		S1:         1000,
		S2:         2000,
		S:          3000,
		L:          sizer.DefaultRecord,
		L1:         sizer.DefaultOnePercent,
		PassRecord: true,
		PassPrize:  true,
	}
	if got != want {
		t.Errorf("report = %+v, want %+v", got, want)
	}
}

func TestThresholdOverrides(t *testing.T) {
	comp, archive := writeFiles(t)

	out, _, code := run(t, "--L=3_000", "--L1=3000", comp, archive, "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.Contains(out, `"pass_record": false`) {
		t.Errorf("expected pass_record false in %s", out)
	}
	if !strings.Contains(out, `"pass_prize_1pct": true`) {
		t.Errorf("expected pass_prize_1pct true in %s", out)
	}
}

func TestInvalidThreshold(t *testing.T) {
	out, errOut, code := run(t, "--L=abc", "missing-comp", "missing-archive")

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if want := "error: --L must be an integer\n"; errOut != want {
		t.Errorf("stderr = %q, want %q", errOut, want)
	}
}

func TestOneMissingFile(t *testing.T) {
	comp, _ := writeFiles(t)
	missing := filepath.Join(t.TempDir(), "nope")

	out, errOut, code := run(t, comp, missing)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if n := strings.Count(errOut, "\n"); n != 1 {
		t.Errorf("stderr lines = %d, want 1", n)
	}
	if !strings.HasPrefix(errOut, "error: cannot stat "+missing+": ") {
		t.Errorf("stderr = %q, want stat error for %s", errOut, missing)
	}
}

func TestBothMissingFiles(t *testing.T) {
	dir := t.TempDir()
	comp := filepath.Join(dir, "c")
	archive := filepath.Join(dir, "a")

	_, errOut, code := run(t, comp, archive)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	if len(lines) != 2 {
		t.Fatalf("stderr lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], comp) {
		t.Errorf("first error %q does not name %s", lines[0], comp)
	}
	if !strings.Contains(lines[1], archive) {
		t.Errorf("second error %q does not name %s", lines[1], archive)
	}
}
