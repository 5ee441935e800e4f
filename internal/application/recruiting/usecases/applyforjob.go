package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/domain/screening"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

const (
	screenAccepted = "accepted"
	screenDenied   = "denied"
	screenUpstream = "upstream_error"
)

type ApplyForJobCommand struct {
	Slug     string
	Name     string
	Filename string
	File     io.Reader
}

// ApplyForJobUseCase screens an uploaded résumé and stores the candidate with its
// verification questions. Any failure of the extractor or the model aborts before the
// candidate row is written.
type ApplyForJobUseCase struct {
	jobRepo       recruiting.JobRepository
	candidateRepo recruiting.CandidateRepository
	store         ResumeStore
	extractor     TextExtractor
	quota         QuotaService
	structurer    *screening.ResumeStructurer
	realism       *screening.RealismChecker
	fit           *screening.FitScorer
	questions     *screening.QuestionGenerator
	supported     func(filename string) bool
	observer      ScreeningObserver
	logger        logger.Interface
}

func NewApplyForJobUseCase(
	jobRepo recruiting.JobRepository,
	candidateRepo recruiting.CandidateRepository,
	store ResumeStore,
	extractor TextExtractor,
	supported func(filename string) bool,
	quota QuotaService,
	gen screening.TextGenerator,
	logger logger.Interface,
) *ApplyForJobUseCase {
	return &ApplyForJobUseCase{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		store:         store,
		extractor:     extractor,
		supported:     supported,
		quota:         quota,
		structurer:    screening.NewResumeStructurer(gen),
		realism:       screening.NewRealismChecker(gen),
		fit:           screening.NewFitScorer(gen),
		questions:     screening.NewQuestionGenerator(gen),
		logger:        logger,
	}
}

func (uc *ApplyForJobUseCase) WithObserver(o ScreeningObserver) *ApplyForJobUseCase {
	uc.observer = o
	return uc
}

func (uc *ApplyForJobUseCase) Execute(ctx context.Context, cmd ApplyForJobCommand) (*dto.ApplicationDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if cmd.File == nil || strings.TrimSpace(cmd.Filename) == "" {
		return nil, apperrors.NewValidationError("resume_file is required")
	}
	if !uc.supported(cmd.Filename) {
		return nil, apperrors.NewValidationError("unsupported resume file type", cmd.Filename)
	}

	job, err := getOpenJobBySlug(ctx, uc.jobRepo, cmd.Slug)
	if err != nil {
		return nil, err
	}

	check, err := uc.quota.CheckLimit(ctx, job.TenantID, billing.ResourceMonthlyResumes)
	if err != nil {
		return nil, fmt.Errorf("failed to check resume limit: %w", err)
	}
	if err := quota.LimitDenied(check); err != nil {
		uc.logger.Infow("application denied by plan limit",
			"tenant_id", job.TenantID,
			"jd_code", job.Code,
			"current", check.Current,
			"limit", check.Limit,
		)
		uc.record(screenDenied)
		return nil, err
	}

	candidateID := recruiting.NewCandidateID()
	stored, err := uc.store.Save(candidateID, cmd.Filename, cmd.File)
	if err != nil {
		uc.logger.Errorw("failed to store resume", "error", err, "candidate_id", candidateID)
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	candidate, err := uc.screen(ctx, job, candidateID, name, stored)
	if err != nil {
		if rmErr := uc.store.Delete(stored); rmErr != nil {
			uc.logger.Warnw("failed to remove resume after screening failure", "error", rmErr, "file", stored)
		}
		uc.record(screenUpstream)
		return nil, err
	}

	if err := uc.candidateRepo.Create(ctx, candidate); err != nil {
		uc.logger.Errorw("failed to create candidate", "error", err, "candidate_id", candidateID)
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	if err := uc.quota.RecordResume(ctx, job.TenantID); err != nil {
		uc.logger.Warnw("failed to record resume usage", "error", err, "tenant_id", job.TenantID)
	}

	uc.record(screenAccepted)
	uc.logger.Infow("candidate screened",
		"candidate_id", candidateID,
		"jd_code", job.Code,
		"fit_score", *candidate.FitScore,
		"realism", candidate.Realism,
		"questions", len(candidate.Questions),
	)
	return &dto.ApplicationDTO{CandidateID: candidateID, Questions: candidate.Questions}, nil
}

func (uc *ApplyForJobUseCase) screen(ctx context.Context, job *recruiting.JobDescription, id, name, stored string) (*recruiting.Candidate, error) {
	text, err := uc.extractor.Extract(uc.store.Path(stored))
	if err != nil {
		uc.logger.Warnw("failed to extract resume text", "error", err, "candidate_id", id)
		return nil, apperrors.NewUpstreamError("resume text could not be extracted", err.Error())
	}
	if text == "" {
		return nil, apperrors.NewValidationError("resume file contains no text")
	}

	resume, err := uc.structurer.Structure(ctx, text)
	if err != nil {
		return nil, uc.upstream("structure resume", id, err)
	}
	realistic, err := uc.realism.Check(ctx, resume)
	if err != nil {
		return nil, uc.upstream("check resume realism", id, err)
	}

	jobText := job.Title + "\n\n" + job.Body
	fit, err := uc.fit.Score(ctx, resume, jobText)
	if err != nil {
		return nil, uc.upstream("score resume fit", id, err)
	}
	questions, err := uc.questions.Generate(ctx, resume, jobText)
	if err != nil {
		return nil, uc.upstream("generate questions", id, err)
	}

	return &recruiting.Candidate{
		ID:        id,
		TenantID:  job.TenantID,
		JDCode:    job.Code,
		Name:      name,
		ResumeURL: stored,
		Resume:    resume,
		Realism:   realistic,
		FitScore:  &fit,
		Questions: questions,
	}, nil
}

func (uc *ApplyForJobUseCase) upstream(step, candidateID string, err error) error {
	uc.logger.Errorw("screening step failed", "step", step, "error", err, "candidate_id", candidateID)
	return apperrors.NewUpstreamError(fmt.Sprintf("failed to %s", step), err.Error())
}

func (uc *ApplyForJobUseCase) record(result string) {
	if uc.observer != nil {
		uc.observer.RecordResumeScreened(result)
	}
}
