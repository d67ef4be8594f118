package sizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/weiihann/prizebench/internal/cli"
)

const (
	flagRecord     = "--L"
	flagOnePercent = "--L1"
	flagJSON       = "--json"
)

// ErrInvalidThreshold is returned when --L or --L1 is not an integer.
var ErrInvalidThreshold = errors.New("must be an integer")

// Options is the parsed sizer command line.
type Options struct {
	Comp       string
	Archive    string
	Thresholds Thresholds
	JSON       bool
	// Help is set when usage should be printed: no arguments, -h/--help,
	// or a positional count other than two.
	Help bool
}

// ParseArgs parses args starting from defaults. Threshold flags are only
// recognised in --L=N / --L1=N form; every unrecognised token is positional.
// A malformed threshold aborts parsing with an error wrapping
// ErrInvalidThreshold.
func ParseArgs(args []string, defaults Thresholds) (Options, error) {
	opts := Options{Thresholds: defaults}

	if cli.WantsHelp(args) {
		opts.Help = true

		return opts, nil
	}

	var positional []string

	for _, a := range args {
		switch {
		case strings.HasPrefix(a, flagRecord+"="):
			v, err := parseThreshold(flagRecord, a)
			if err != nil {
				return opts, err
			}

			opts.Thresholds.Record = v

		case strings.HasPrefix(a, flagOnePercent+"="):
			v, err := parseThreshold(flagOnePercent, a)
			if err != nil {
				return opts, err
			}

			opts.Thresholds.OnePercent = v

		case a == flagJSON:
			opts.JSON = true

		default:
			positional = append(positional, a)
		}
	}

	if len(positional) != 2 {
		opts.Help = true

		return opts, nil
	}

	opts.Comp, opts.Archive = positional[0], positional[1]

	return opts, nil
}

func parseThreshold(flag, arg string) (int64, error) {
	_, raw, _ := strings.Cut(arg, "=")

	digits, ok := stripDigitSeparators(strings.TrimSpace(raw))
	if !ok {
		return 0, fmt.Errorf("%s %w", flag, ErrInvalidThreshold)
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %w", flag, ErrInvalidThreshold)
	}

	return v, nil
}

// stripDigitSeparators removes underscores from a decimal literal such as
// 110_793_128. Each underscore must sit between two digits.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return "", false
	}

	for i := 0; i < len(body); i++ {
		if body[i] != '_' {
			continue
		}

		if i == 0 || i == len(body)-1 ||
			!isDigit(body[i-1]) || !isDigit(body[i+1]) {
			return "", false
		}
	}

	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
