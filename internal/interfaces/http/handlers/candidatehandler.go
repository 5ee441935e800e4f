package handlers

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

type listCandidatesUseCase interface {
	Execute(ctx context.Context, query usecases.ListCandidatesQuery) (*usecases.ListCandidatesResult, error)
}

type candidatesUseCase interface {
	Get(ctx context.Context, tenantID uint, id string) (*dto.CandidateDTO, error)
	Delete(ctx context.Context, tenantID uint, id string) error
	OpenResume(ctx context.Context, tenantID uint, id string) (*usecases.ResumeFile, error)
}

type CandidateHandler struct {
	listUC       listCandidatesUseCase
	candidatesUC candidatesUseCase
	logger       logger.Interface
}

func NewCandidateHandler(listUC listCandidatesUseCase, candidatesUC candidatesUseCase, logger logger.Interface) *CandidateHandler {
	return &CandidateHandler{
		listUC:       listUC,
		candidatesUC: candidatesUC,
		logger:       logger,
	}
}

// ListCandidates handles GET /candidates?jd_code=&page=&page_size=
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCandidatesQuery{
		TenantID: tenantID,
		JDCode:   c.Query("jd_code"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Candidates, result.Total, p.Page, p.PageSize)
}

// GetCandidate handles GET /candidates/:id
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.candidatesUC.Get(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteCandidate handles DELETE /candidates/:id
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	if err := h.candidatesUC.Delete(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DownloadResume handles GET /candidates/:id/resume
func (h *CandidateHandler) DownloadResume(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	resume, err := h.candidatesUC.OpenResume(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer resume.File.Close()

	info, err := resume.File.Stat()
	if err != nil {
		h.logger.Errorw("failed to stat resume", "error", err, "candidate_id", c.Param("id"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(resume.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, info.Size(), contentType, resume.File, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", resume.Filename),
	})
}
