package sizer

import (
	"errors"
	"fmt"
	"os"
)

// StatError reports a path whose size could not be read.
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Path, e.Err)
}

func (e *StatError) Unwrap() error {
	return e.Err
}

// FileSize returns the size of path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &StatError{Path: path, Err: unwrapPathError(err)}
	}

	return info.Size(), nil
}

// Measure stats both files of opts and builds the report. Both paths are
// always tried; if either fails the returned error joins every StatError.
func Measure(opts Options) (Report, error) {
	var errs []error

	s1, err := FileSize(opts.Comp)
	if err != nil {
		errs = append(errs, err)
	}

	s2, err := FileSize(opts.Archive)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Report{}, errors.Join(errs...)
	}

	return NewReport(opts.Comp, opts.Archive, s1, s2, opts.Thresholds), nil
}

// unwrapPathError drops the *fs.PathError wrapper so the path is not
// repeated in the message.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}

// StatErrors returns every StatError contained in err, in order.
func StatErrors(err error) []*StatError {
	if err == nil {
		return nil
	}

	var out []*StatError

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, StatErrors(e)...)
		}

		return out
	}

	var statErr *StatError
	if errors.As(err, &statErr) {
		out = append(out, statErr)
	}

	return out
}
