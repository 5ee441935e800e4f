package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type ListCandidatesQuery struct {
	TenantID uint
	JDCode   string
	Page     int
	PageSize int
}

type ListCandidatesResult struct {
	Candidates []*dto.CandidateDTO
	Total      int64
}

type ListCandidatesUseCase struct {
	candidateRepo recruiting.CandidateRepository
	logger        logger.Interface
}

func NewListCandidatesUseCase(candidateRepo recruiting.CandidateRepository, logger logger.Interface) *ListCandidatesUseCase {
	return &ListCandidatesUseCase{candidateRepo: candidateRepo, logger: logger}
}

func (uc *ListCandidatesUseCase) Execute(ctx context.Context, query ListCandidatesQuery) (*ListCandidatesResult, error) {
	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	candidates, total, err := uc.candidateRepo.List(ctx, recruiting.CandidateFilter{
		TenantID: query.TenantID,
		JDCode:   strings.TrimSpace(query.JDCode),
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list candidates", "error", err, "tenant_id", query.TenantID)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return &ListCandidatesResult{Candidates: dto.ToCandidateDTOList(candidates), Total: total}, nil
}

// CandidatesUseCase serves single-candidate reads and removal for recruiters.
type CandidatesUseCase struct {
	candidateRepo recruiting.CandidateRepository
	store         ResumeStore
	logger        logger.Interface
}

func NewCandidatesUseCase(candidateRepo recruiting.CandidateRepository, store ResumeStore, logger logger.Interface) *CandidatesUseCase {
	return &CandidatesUseCase{candidateRepo: candidateRepo, store: store, logger: logger}
}

func (uc *CandidatesUseCase) Get(ctx context.Context, tenantID uint, id string) (*dto.CandidateDTO, error) {
	candidate, err := uc.load(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCandidateDTO(candidate), nil
}

// Delete removes the candidate and its stored résumé.
func (uc *CandidatesUseCase) Delete(ctx context.Context, tenantID uint, id string) error {
	candidate, err := uc.load(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := uc.candidateRepo.Delete(ctx, candidate.ID); err != nil {
		uc.logger.Errorw("failed to delete candidate", "error", err, "candidate_id", candidate.ID)
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if candidate.ResumeURL != "" {
		if err := uc.store.Delete(candidate.ResumeURL); err != nil {
			uc.logger.Warnw("failed to delete resume file", "error", err, "candidate_id", candidate.ID)
		}
	}

	uc.logger.Infow("candidate deleted", "candidate_id", candidate.ID, "tenant_id", tenantID)
	return nil
}

type ResumeFile struct {
	File     *os.File
	Filename string
}

// OpenResume opens the stored résumé. The caller closes the file.
func (uc *CandidatesUseCase) OpenResume(ctx context.Context, tenantID uint, id string) (*ResumeFile, error) {
	candidate, err := uc.load(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if candidate.ResumeURL == "" {
		return nil, apperrors.NewNotFoundError("resume not found", candidate.ID)
	}

	f, err := uc.store.Open(candidate.ResumeURL)
	if err != nil {
		uc.logger.Warnw("failed to open resume", "error", err, "candidate_id", candidate.ID)
		return nil, apperrors.NewNotFoundError("resume not found", candidate.ID)
	}
	return &ResumeFile{
		File:     f,
		Filename: resumeDownloadName(candidate),
	}, nil
}

func (uc *CandidatesUseCase) load(ctx context.Context, tenantID uint, id string) (*recruiting.Candidate, error) {
	id = strings.TrimSpace(id)
	candidate, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recruiting.ErrCandidateNotFound) {
			return nil, apperrors.NewNotFoundError("candidate not found", id)
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("candidate not found", id)
	}
	return candidate, nil
}

func resumeDownloadName(c *recruiting.Candidate) string {
	base := strings.Join(strings.Fields(c.Name), "_")
	if base == "" {
		base = c.ID
	}
	return base + "_resume" + filepath.Ext(c.ResumeURL)
}
