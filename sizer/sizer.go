// Package sizer measures a compressor/archive file pair and compares the
// combined size against the contest thresholds.
package sizer

// Default thresholds, in bytes.
const (
	DefaultRecord     int64 = 110_793_128
	DefaultOnePercent int64 = 109_685_196
)

// Thresholds are the sizes a result is compared against.
type Thresholds struct {
	// Record is L, the current record to beat.
	Record int64
	// OnePercent is L1, the at-least-one-percent improvement threshold.
	OnePercent int64
}

// DefaultThresholds returns the contest defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{Record: DefaultRecord, OnePercent: DefaultOnePercent}
}

// Report is the outcome for one file pair.
type Report struct {
	Comp       string `json:"comp"`
	Archive    string `json:"archive"`
	S1         int64  `json:"S1"`
	S2         int64  `json:"S2"`
	S          int64  `json:"S"`
	L          int64  `json:"L"`
	L1         int64  `json:"L_1pct"`
	PassRecord bool   `json:"pass_record"`
	PassPrize  bool   `json:"pass_prize_1pct"`
}

// NewReport sums s1 and s2 and evaluates both comparisons. Beating the
// record is strict; the one-percent threshold passes on equality.
func NewReport(comp, archive string, s1, s2 int64, th Thresholds) Report {
	s := s1 + s2

	return Report{
		Comp:       comp,
		Archive:    archive,
		S1:         s1,
		S2:         s2,
		S:          s,
		L:          th.Record,
		L1:         th.OnePercent,
		PassRecord: s < th.Record,
		PassPrize:  s <= th.OnePercent,
	}
}
