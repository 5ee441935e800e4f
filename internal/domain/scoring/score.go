// Package scoring turns raw candidate scores into the 1..5 buckets used by analytics.
//
// Rounding is round-half-to-even everywhere in this package, so 2.5 buckets to 2 and
// 3.5 buckets to 4. Both bucket functions share the same rounding helper.
package scoring

import "math"

// ScoreSource tells where a relevancy value came from.
type ScoreSource int

const (
	SourceAbsent ScoreSource = iota
	// SourceExplicit is the candidate's relevancy field.
	SourceExplicit
	// SourceLegacy is the fit score recorded by older rows that lack a relevancy value.
	SourceLegacy
)

func (s ScoreSource) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceLegacy:
		return "legacy"
	default:
		return "absent"
	}
}

// Score is Explicit(value) | Legacy(value) | Absent.
type Score struct {
	source ScoreSource
	value  float64
}

func Explicit(v float64) Score { return Score{source: SourceExplicit, value: v} }
func Legacy(v float64) Score   { return Score{source: SourceLegacy, value: v} }
func Absent() Score            { return Score{} }

func (s Score) Source() ScoreSource { return s.source }

// Value returns the numeric score; ok is false for Absent.
func (s Score) Value() (v float64, ok bool) {
	if s.source == SourceAbsent {
		return 0, false
	}
	return s.value, true
}

// RelevancyScore prefers the explicit relevancy value and falls back to the legacy fit score.
// Non-finite values are treated as missing.
func RelevancyScore(relevancy *float64, fitScore *int) Score {
	if relevancy != nil && isFinite(*relevancy) {
		return Explicit(*relevancy)
	}
	if fitScore != nil {
		return Legacy(float64(*fitScore))
	}
	return Absent()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
