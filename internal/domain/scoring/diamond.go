package scoring

// DiamondThreshold is the minimum bucket on both axes for a diamond candidate.
const DiamondThreshold Bucket = 4

// IsDiamond reports whether both buckets are present and at least DiamondThreshold.
func IsDiamond(claim, relevancy Bucket) bool {
	return claim.Valid() && relevancy.Valid() &&
		claim >= DiamondThreshold && relevancy >= DiamondThreshold
}
