// Package report formats sizer results as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/weiihann/prizebench/sizer"
)

// Generate writes the human-readable report for r.
func Generate(w io.Writer, r sizer.Report) error {
	lines := []string{
		fmt.Sprintf("S1 (comp):    %d bytes", r.S1),
		fmt.Sprintf("S2 (archive): %d bytes", r.S2),
		fmt.Sprintf("S total:      %d bytes", r.S),
		fmt.Sprintf("Record to beat (L):      %d", r.L),
		fmt.Sprintf("≥1%% improvement (L_1%%): %d", r.L1),
		"Status vs record: " + status(r.PassRecord),
		"Status vs ≥1%:   " + status(r.PassPrize),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

// GenerateJSON writes r as an indented JSON object to w.
func GenerateJSON(w io.Writer, r sizer.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(r)
}

func status(pass bool) string {
	if pass {
		return "PASS"
	}

	return "FAIL"
}
