package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
)

func fp(v float64) *float64 { return &v }

func ip(v int) *int { return &v }

func job(code, title string, posted *time.Time) *recruiting.JobDescription {
	return &recruiting.JobDescription{Code: code, Title: title, Status: recruiting.JobStatusOpen, StartDate: posted}
}

func scenarioCandidates() []*recruiting.Candidate {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	qs := []string{"q1", "q2", "q3", "q4"}
	return []*recruiting.Candidate{
		{
			ID: "c1", JDCode: "ENG-1", Name: "Ada Lovelace", Relevancy: fp(5),
			Questions: qs, Answers: []string{"a", "b", "c", "d"},
			AnswerScores: []*float64{fp(5), fp(5), fp(5), fp(5)}, CreatedAt: base,
		},
		{
			ID: "c2", JDCode: "ENG-1", Name: "Grace", FitScore: ip(5),
			Questions: qs, Answers: []string{"a", "b", "", ""},
			AnswerScores: []*float64{fp(4), fp(4), nil, nil}, CreatedAt: base.Add(2 * time.Hour),
		},
		{
			ID: "c3", JDCode: "ENG-1", Name: "", Relevancy: fp(3),
			Questions: qs[:2], CreatedAt: base.Add(time.Hour),
		},
	}
}

func TestBuildJobDetail_ThreeCandidateScenario(t *testing.T) {
	d := BuildJobDetail(job("ENG-1", "Engineer", nil), scenarioCandidates(), time.Now())

	assert.Equal(t, 3, d.Totals.Applied)
	assert.Equal(t, 2, d.Totals.DiamondsFound)
	assert.Equal(t, 1, d.Totals.Completed)
	assert.Equal(t, 33.3, d.Totals.CompletionPct)

	assert.Equal(t, [5]int{0, 0, 0, 1, 1}, d.Distributions.ClaimValidity)
	assert.Equal(t, [5]int{0, 0, 1, 0, 2}, d.Distributions.Relevancy)

	var want [5][5]int
	want[4][4] = 1
	want[4][3] = 1
	assert.Equal(t, want, d.Heatmap.Matrix)

	require.Len(t, d.Heatmap.Cells, 2)
	assert.Equal(t, 5, d.Heatmap.Cells[0].Relevancy)
	assert.Equal(t, 5, d.Heatmap.Cells[0].Claim)
	assert.Equal(t, 4, d.Heatmap.Cells[1].Claim)
	assert.Equal(t, "c1", d.Heatmap.Cells[0].Candidates[0].ID)
	assert.Equal(t, "c2", d.Heatmap.Cells[1].Candidates[0].ID)
	assert.Equal(t, []string{"5/5", "4/5", "3/5", "2/5", "1/5"}, d.Heatmap.Axes.Relevancy)

	require.Len(t, d.Diamonds, 2)
	assert.Equal(t, "c1", d.Diamonds[0].ID)
	assert.Equal(t, "AL", d.Diamonds[0].Initials)
	assert.Equal(t, 5.0, d.Diamonds[0].CombinedScore)
	assert.Equal(t, "GR", d.Diamonds[1].Initials)
	assert.Equal(t, 4.45, d.Diamonds[1].CombinedScore)

	assert.Equal(t, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), d.Summary.LastUpdated)
	assert.Equal(t, 33.3, d.Summary.CompletionRate)
}

func TestBuildJobDetail_NoCandidates(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	d := BuildJobDetail(job("X", "Empty", nil), nil, now)

	assert.Equal(t, 0, d.Totals.Applied)
	assert.Equal(t, 0.0, d.Totals.CompletionPct)
	assert.Empty(t, d.CompletionFunnel)
	assert.NotNil(t, d.CompletionFunnel)
	assert.Empty(t, d.Diamonds)
	assert.Nil(t, d.Statistics.ClaimValidity.Mean)
	assert.Nil(t, d.ROI.Calculated.SpeedImprovement)
	assert.Equal(t, 0.0, d.ROI.Calculated.EfficiencyPercentage)
	assert.Equal(t, now, d.Summary.LastUpdated)
}

func TestBuildJobDetail_FunnelROIAndStats(t *testing.T) {
	d := BuildJobDetail(job("ENG-1", "Engineer", nil), scenarioCandidates(), time.Now())

	assert.Equal(t, []FunnelStage{
		{Stage: "Applied (Resume Upload)", Count: 3, Percentage: 100},
		{Stage: "Question 1 Completed", Count: 2, Percentage: 66.7},
		{Stage: "Question 2 Completed", Count: 2, Percentage: 66.7},
		{Stage: "Question 3 Completed", Count: 1, Percentage: 33.3},
		{Stage: "Question 4 Completed", Count: 1, Percentage: 33.3},
	}, d.CompletionFunnel)

	// 30 manual minutes, 10 assisted minutes.
	assert.Equal(t, 0.33, d.ROI.Calculated.TimeSavedHours)
	assert.Equal(t, 16.67, d.ROI.Calculated.CostSaved)
	require.NotNil(t, d.ROI.Calculated.SpeedImprovement)
	assert.Equal(t, 3.0, *d.ROI.Calculated.SpeedImprovement)
	assert.Equal(t, 66.7, d.ROI.Calculated.EfficiencyPercentage)

	claim := d.Statistics.ClaimValidity
	require.NotNil(t, claim.Mean)
	assert.Equal(t, 4.5, *claim.Mean)
	assert.Equal(t, 4.5, *claim.Median)
	assert.Equal(t, 0.5, *claim.StdDev)

	rel := d.Statistics.Relevancy
	require.NotNil(t, rel.Mean)
	assert.Equal(t, 4.33, *rel.Mean)
	assert.Equal(t, 5.0, *rel.Median)
	assert.Equal(t, 0.94, *rel.StdDev)
}

func TestComputeStats_SingleValue(t *testing.T) {
	s := computeStats([]float64{3.456})
	require.NotNil(t, s.Mean)
	assert.Equal(t, 3.46, *s.Mean)
	assert.Equal(t, 3.46, *s.Median)
	assert.Equal(t, 0.0, *s.StdDev)
}

func TestComputeROI_MoreDiamondTimeThanManual(t *testing.T) {
	roi := computeROI(1, 1)
	assert.Equal(t, 0.08, roi.Calculated.TimeSavedHours)
	require.NotNil(t, roi.Calculated.SpeedImprovement)
	assert.Equal(t, 2.0, *roi.Calculated.SpeedImprovement)
	assert.Equal(t, 100.0, roi.Calculated.EfficiencyPercentage)
}

func TestTopDiamonds_KeepsFiveOrderedByCombined(t *testing.T) {
	var cands []*recruiting.Candidate
	for i, rel := range []float64{4, 5, 4.2, 4.8, 4.4, 4.6, 4.1} {
		cands = append(cands, &recruiting.Candidate{
			ID: string(rune('a' + i)), JDCode: "J", Relevancy: fp(rel),
			AnswerScores: []*float64{fp(4)},
		})
	}
	d := BuildJobDetail(job("J", "J", nil), cands, time.Now())

	assert.Equal(t, 7, d.Totals.DiamondsFound)
	require.Len(t, d.Diamonds, 5)
	ids := make([]string, 0, 5)
	for _, r := range d.Diamonds {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "d", "f", "e", "c"}, ids)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "--", Initials(""))
	assert.Equal(t, "--", Initials("   "))
	assert.Equal(t, "AD", Initials("ada"))
	assert.Equal(t, "X", Initials("x"))
	assert.Equal(t, "AL", Initials("ada king lovelace"))
	assert.Equal(t, "ÉZ", Initials("éva zöld"))
}

func TestBuildJobSummaries(t *testing.T) {
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	jobs := []*recruiting.JobDescription{
		job("A", "Alpha", &d1),
		job("B", "Beta", nil),
		job("", "No code", &d2),
		job("C", "Gamma", &d2),
		job("D", "Delta", nil),
		job("ENG-1", "Engineer", &d1),
	}

	got := BuildJobSummaries(jobs, scenarioCandidates())

	titles := make([]string, 0, len(got))
	for _, s := range got {
		titles = append(titles, s.JDTitle)
	}
	assert.Equal(t, []string{"Gamma", "Engineer", "Alpha", "Delta", "Beta"}, titles)

	eng := got[1]
	assert.Equal(t, 3, eng.Applicants)
	assert.Equal(t, 2, eng.DiamondsFound)
	require.NotNil(t, eng.Posted)
	assert.Equal(t, "2025-01-01", *eng.Posted)
	assert.Nil(t, got[4].Posted)
	assert.Equal(t, 0, got[0].Applicants)
}

// Aggregates stay consistent for arbitrary candidate sets.
func TestBuildJobDetail_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		n := rng.Intn(12)
		cands := make([]*recruiting.Candidate, 0, n)
		bothBuckets, withClaim, withRel := 0, 0, 0
		for i := 0; i < n; i++ {
			c := &recruiting.Candidate{ID: "c", JDCode: "J"}
			switch rng.Intn(3) {
			case 0:
				c.Relevancy = fp(rng.Float64() * 6)
			case 1:
				c.FitScore = ip(1 + rng.Intn(5))
			}
			for k := 0; k < rng.Intn(5); k++ {
				if rng.Intn(3) == 0 {
					c.AnswerScores = append(c.AnswerScores, nil)
				} else {
					c.AnswerScores = append(c.AnswerScores, fp(float64(1+rng.Intn(5))))
				}
			}
			nq := rng.Intn(5)
			for k := 0; k < nq; k++ {
				c.Questions = append(c.Questions, "q")
			}
			for k := 0; k < rng.Intn(5); k++ {
				c.Answers = append(c.Answers, []string{"", "yes"}[rng.Intn(2)])
			}

			hasClaim := c.ClaimBucket().Valid()
			hasRel := c.RelevancyBucket().Valid()
			if hasClaim {
				withClaim++
			}
			if hasRel {
				withRel++
			}
			if hasClaim && hasRel {
				bothBuckets++
			}
			cands = append(cands, c)
		}

		d := BuildJobDetail(job("J", "J", nil), cands, time.Now())

		assert.LessOrEqual(t, d.Totals.DiamondsFound, d.Totals.Applied)
		assert.GreaterOrEqual(t, d.Totals.CompletionPct, 0.0)
		assert.LessOrEqual(t, d.Totals.CompletionPct, 100.0)

		heat := 0
		for _, row := range d.Heatmap.Matrix {
			for _, v := range row {
				heat += v
			}
		}
		assert.Equal(t, bothBuckets, heat)
		assert.Equal(t, withClaim, sum(d.Distributions.ClaimValidity))
		assert.Equal(t, withRel, sum(d.Distributions.Relevancy))

		members := 0
		for _, cell := range d.Heatmap.Cells {
			members += len(cell.Candidates)
		}
		assert.Equal(t, heat, members)
	}
}

func TestDiamondCountMonotonic(t *testing.T) {
	cands := scenarioCandidates()
	prev := BuildJobDetail(job("ENG-1", "E", nil), cands, time.Now()).Totals.DiamondsFound

	cands = append(cands, &recruiting.Candidate{ID: "c4", JDCode: "ENG-1", Relevancy: fp(4), AnswerScores: []*float64{fp(4)}})
	next := BuildJobDetail(job("ENG-1", "E", nil), cands, time.Now()).Totals.DiamondsFound
	assert.Equal(t, prev+1, next)

	cands = append(cands, &recruiting.Candidate{ID: "c5", JDCode: "ENG-1", Relevancy: fp(2)})
	assert.Equal(t, next, BuildJobDetail(job("ENG-1", "E", nil), cands, time.Now()).Totals.DiamondsFound)
}

func sum(xs [5]int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
