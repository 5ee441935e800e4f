package scoring

import "math"

const (
	MinBucket = 1
	MaxBucket = 5
)

// Bucket is an integer score in [1,5]. NoScore marks a candidate excluded from aggregates.
type Bucket int

const NoScore Bucket = 0

func (b Bucket) Valid() bool {
	return b >= MinBucket && b <= MaxBucket
}

// Index is the zero-based position of the bucket in distributions and the heatmap.
func (b Bucket) Index() int {
	return int(b) - 1
}

// BucketOf rounds v half-to-even and clamps the result to [1,5].
func BucketOf(v float64) Bucket {
	b := int(math.RoundToEven(v))
	if b < MinBucket {
		b = MinBucket
	}
	if b > MaxBucket {
		b = MaxBucket
	}
	return Bucket(b)
}

// ClaimValidityMean averages the non-null answer scores. ok is false when no value is usable.
func ClaimValidityMean(answerScores []*float64) (mean float64, ok bool) {
	var sum float64
	var n int
	for _, s := range answerScores {
		if s == nil || !isFinite(*s) {
			continue
		}
		sum += *s
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ClaimValidityBucket is clamp(round(mean(valid scores)), 1, 5), or NoScore.
func ClaimValidityBucket(answerScores []*float64) Bucket {
	mean, ok := ClaimValidityMean(answerScores)
	if !ok {
		return NoScore
	}
	return BucketOf(mean)
}

// RelevancyBucket is clamp(round(value), 1, 5), or NoScore for an absent score.
func RelevancyBucket(s Score) Bucket {
	v, ok := s.Value()
	if !ok {
		return NoScore
	}
	return BucketOf(v)
}
