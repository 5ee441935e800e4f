package analytics

import (
	"sort"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
)

// BuildJobSummaries counts applicants and diamonds for every job with a code. Rows are
// ordered newest posting first, unposted jobs last, then by title descending.
func BuildJobSummaries(jobs []*recruiting.JobDescription, candidates []*recruiting.Candidate) []JobSummary {
	byCode := groupByJobCode(candidates)

	out := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		if job.Code == "" {
			continue
		}
		bucket := byCode[job.Code]

		diamonds := 0
		for _, c := range bucket {
			if c.IsDiamond() {
				diamonds++
			}
		}

		out = append(out, JobSummary{
			JDCode:        job.Code,
			JDTitle:       job.Title,
			Status:        string(job.Status),
			Department:    job.Department,
			Team:          job.Team,
			Posted:        job.PostedDate(),
			Applicants:    len(bucket),
			DiamondsFound: diamonds,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := derefString(out[i].Posted), derefString(out[j].Posted)
		if pi != pj {
			return pi > pj
		}
		return out[i].JDTitle > out[j].JDTitle
	})
	return out
}

func groupByJobCode(candidates []*recruiting.Candidate) map[string][]*recruiting.Candidate {
	byCode := make(map[string][]*recruiting.Candidate)
	for _, c := range candidates {
		if c.JDCode == "" {
			continue
		}
		byCode[c.JDCode] = append(byCode[c.JDCode], c)
	}
	return byCode
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
