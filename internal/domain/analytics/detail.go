package analytics

import (
	"fmt"
	"time"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/domain/scoring"
)

// evaluated caches the per-candidate scores used across the detail report.
type evaluated struct {
	candidate    *recruiting.Candidate
	claimBucket  scoring.Bucket
	relBucket    scoring.Bucket
	claim        float64
	hasClaim     bool
	relevancy    float64
	hasRelevancy bool
	combined     float64
}

func evaluate(c *recruiting.Candidate) evaluated {
	e := evaluated{
		candidate:   c,
		claimBucket: c.ClaimBucket(),
		relBucket:   c.RelevancyBucket(),
	}
	e.claim, e.hasClaim = scoring.ClaimValidityMean(c.AnswerScores)
	e.relevancy, e.hasRelevancy = c.RelevancyScore().Value()
	e.combined = combinedScore(e.claim, e.relevancy)
	return e
}

func (e evaluated) ref() CandidateRef {
	return CandidateRef{
		ID:                 e.candidate.ID,
		Name:               e.candidate.Name,
		Initials:           Initials(e.candidate.Name),
		ClaimValidityScore: round2(e.claim),
		RelevancyScore:     round2(e.relevancy),
		CombinedScore:      round2(e.combined),
	}
}

// AxisLabels are the heatmap axis labels in display order, highest bucket first.
func AxisLabels() []string {
	labels := make([]string, 0, scoring.MaxBucket)
	for b := scoring.MaxBucket; b >= scoring.MinBucket; b-- {
		labels = append(labels, fmt.Sprintf("%d/5", b))
	}
	return labels
}

// BuildJobDetail aggregates the candidates of one job. now is reported as last update
// when there are no candidates.
func BuildJobDetail(job *recruiting.JobDescription, candidates []*recruiting.Candidate, now time.Time) *JobDetail {
	total := len(candidates)
	completed := 0

	var (
		dist        Distributions
		heatmap     = Heatmap{Axes: HeatmapAxes{Relevancy: AxisLabels(), ClaimValidity: AxisLabels()}}
		cells       = make(map[[2]int][]CandidateRef)
		claimValues []float64
		relValues   []float64
		diamonds    []evaluated
		lastUpdated time.Time
	)

	for _, c := range candidates {
		if c.IsCompleted() {
			completed++
		}
		if c.CreatedAt.After(lastUpdated) {
			lastUpdated = c.CreatedAt
		}

		e := evaluate(c)
		if e.hasClaim {
			claimValues = append(claimValues, e.claim)
		}
		if e.hasRelevancy {
			relValues = append(relValues, e.relevancy)
		}
		if e.claimBucket.Valid() {
			dist.ClaimValidity[e.claimBucket.Index()]++
		}
		if e.relBucket.Valid() {
			dist.Relevancy[e.relBucket.Index()]++
		}
		if e.claimBucket.Valid() && e.relBucket.Valid() {
			heatmap.Matrix[e.relBucket.Index()][e.claimBucket.Index()]++
			key := [2]int{int(e.relBucket), int(e.claimBucket)}
			cells[key] = append(cells[key], e.ref())
		}
		if scoring.IsDiamond(e.claimBucket, e.relBucket) {
			diamonds = append(diamonds, e)
		}
	}
	if lastUpdated.IsZero() {
		lastUpdated = now
	}

	heatmap.Cells = make([]HeatmapCell, 0, len(cells))
	for rel := scoring.MaxBucket; rel >= scoring.MinBucket; rel-- {
		for claim := scoring.MaxBucket; claim >= scoring.MinBucket; claim-- {
			members, ok := cells[[2]int{rel, claim}]
			if !ok {
				continue
			}
			heatmap.Cells = append(heatmap.Cells, HeatmapCell{Relevancy: rel, Claim: claim, Candidates: members})
		}
	}

	completionPct := percentage(completed, total)

	return &JobDetail{
		JD: JobInfo{
			Code:       job.Code,
			Title:      job.Title,
			Status:     string(job.Status),
			Department: job.Department,
			Team:       job.Team,
			Posted:     job.PostedDate(),
		},
		Totals: Totals{
			Applied:       total,
			DiamondsFound: len(diamonds),
			CompletionPct: completionPct,
			Completed:     completed,
		},
		Heatmap:       heatmap,
		Distributions: dist,
		Summary: Summary{
			TotalCandidates: total,
			DiamondsFound:   len(diamonds),
			CompletionRate:  completionPct,
			LastUpdated:     lastUpdated,
		},
		Diamonds:         topDiamonds(diamonds),
		CompletionFunnel: buildFunnel(candidates),
		ROI:              computeROI(total, len(diamonds)),
		Statistics: Statistics{
			ClaimValidity: computeStats(claimValues),
			Relevancy:     computeStats(relValues),
		},
	}
}
