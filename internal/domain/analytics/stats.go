package analytics

import (
	"math"
	"sort"
)

// round2 and round1 are display roundings (half away from zero). Bucketing uses
// half-to-even in the scoring package.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// computeStats returns mean, median and population standard deviation rounded to two
// places.
func computeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	if len(values) == 1 {
		v := round2(values[0])
		zero := 0.0
		return Stats{Mean: &v, Median: &v, StdDev: &zero}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(values)))

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	mean, median, std = round2(mean), round2(median), round2(std)
	return Stats{Mean: &mean, Median: &median, StdDev: &std}
}
