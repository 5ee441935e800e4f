package analytics

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	claimWeight     = 0.55
	relevancyWeight = 0.45
	rosterSize      = 5
)

// Initials renders a two-letter avatar label: "--" for no name, the first two letters
// of a single word, otherwise the first letters of the first and last words.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "--"
	case 1:
		r := []rune(parts[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	default:
		first, _ := utf8.DecodeRuneInString(parts[0])
		last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
		return strings.ToUpper(string([]rune{first, last}))
	}
}

func combinedScore(claim, relevancy float64) float64 {
	return claim*claimWeight + relevancy*relevancyWeight
}

func topDiamonds(entries []evaluated) []CandidateRef {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.combined != b.combined {
			return a.combined > b.combined
		}
		if a.claim != b.claim {
			return a.claim > b.claim
		}
		return a.relevancy > b.relevancy
	})
	if len(entries) > rosterSize {
		entries = entries[:rosterSize]
	}

	out := make([]CandidateRef, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ref())
	}
	return out
}
