package analytics

import (
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/domain/scoring"
)

const appliedStage = "Applied (Resume Upload)"

// buildFunnel reports how many candidates answered each question position.
func buildFunnel(candidates []*recruiting.Candidate) []FunnelStage {
	total := len(candidates)
	if total == 0 {
		return []FunnelStage{}
	}

	var answered []int
	for _, c := range candidates {
		progress := scoring.QuestionProgress(c.Questions, c.Answers)
		for len(answered) < len(progress) {
			answered = append(answered, 0)
		}
		for i, ok := range progress {
			if ok {
				answered[i]++
			}
		}
	}

	funnel := make([]FunnelStage, 0, len(answered)+1)
	funnel = append(funnel, FunnelStage{Stage: appliedStage, Count: total, Percentage: 100.0})
	for i, n := range answered {
		funnel = append(funnel, FunnelStage{
			Stage:      fmt.Sprintf("Question %d Completed", i+1),
			Count:      n,
			Percentage: percentage(n, total),
		})
	}
	return funnel
}
