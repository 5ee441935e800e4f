package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/domain/screening"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type SubmitAnswersCommand struct {
	CandidateID string
	Answers     []string
}

type SubmitAnswersUseCase struct {
	candidateRepo recruiting.CandidateRepository
	scorer        *screening.AnswerScorer
	logger        logger.Interface
}

func NewSubmitAnswersUseCase(
	candidateRepo recruiting.CandidateRepository,
	gen screening.TextGenerator,
	logger logger.Interface,
) *SubmitAnswersUseCase {
	return &SubmitAnswersUseCase{
		candidateRepo: candidateRepo,
		scorer:        screening.NewAnswerScorer(gen),
		logger:        logger,
	}
}

func (uc *SubmitAnswersUseCase) Execute(ctx context.Context, cmd SubmitAnswersCommand) (*dto.AnswerScoresDTO, error) {
	id := strings.TrimSpace(cmd.CandidateID)
	candidate, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recruiting.ErrCandidateNotFound) {
			return nil, apperrors.NewNotFoundError("candidate not found", id)
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate.HasAnswered() {
		return nil, apperrors.NewConflictError(recruiting.ErrAlreadyAnswered.Error(), id)
	}

	answers := make([]string, len(cmd.Answers))
	for i, a := range cmd.Answers {
		answers[i] = strings.TrimSpace(a)
	}

	scores, err := uc.scorer.Score(ctx, candidate.Resume, candidate.Questions, answers)
	if err != nil {
		uc.logger.Errorw("failed to score answers", "error", err, "candidate_id", id)
		return nil, apperrors.NewUpstreamError("failed to score answers", err.Error())
	}

	candidate.RecordAnswers(answers, scores)
	if err := uc.candidateRepo.Update(ctx, candidate); err != nil {
		uc.logger.Errorw("failed to save answers", "error", err, "candidate_id", id)
		return nil, fmt.Errorf("failed to save answers: %w", err)
	}

	uc.logger.Infow("answers scored", "candidate_id", id, "scores", scores)
	return &dto.AnswerScoresDTO{
		CandidateID: id,
		Scores:      scores,
		Completed:   candidate.IsCompleted(),
	}, nil
}
