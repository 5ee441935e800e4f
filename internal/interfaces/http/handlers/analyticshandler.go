package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/analytics/usecases"
	"github.com/hireloop/hireloop/internal/domain/analytics"
	"github.com/hireloop/hireloop/internal/shared/constants"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type getJobSummariesUseCase interface {
	Execute(ctx context.Context, tenantSlug string) ([]analytics.JobSummary, error)
}

type getJobDetailUseCase interface {
	Execute(ctx context.Context, query usecases.GetJobDetailQuery) (*analytics.JobDetail, error)
}

type exportJobDetailUseCase interface {
	Execute(ctx context.Context, query usecases.GetJobDetailQuery) (*usecases.ExportJobDetailResult, error)
}

type AnalyticsHandler struct {
	summariesUC getJobSummariesUseCase
	detailUC    getJobDetailUseCase
	exportUC    exportJobDetailUseCase
	logger      logger.Interface
}

func NewAnalyticsHandler(
	summariesUC getJobSummariesUseCase,
	detailUC getJobDetailUseCase,
	exportUC exportJobDetailUseCase,
	logger logger.Interface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		summariesUC: summariesUC,
		detailUC:    detailUC,
		exportUC:    exportUC,
		logger:      logger,
	}
}

// GetSummary handles GET /analytics/summary?tenant=<slug>
//
//	@Summary	Per-job applicant summary
//	@Tags		analytics
//	@Produce	json
//	@Param		tenant	query		string	true	"Tenant slug"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	result, err := h.summariesUC.Execute(c.Request.Context(), c.Query("tenant"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetJobDetail handles GET /analytics/job/:code?tenant=<slug>
//
//	@Summary	Full analytics for one job
//	@Tags		analytics
//	@Produce	json
//	@Param		code	path		string	true	"Job code"
//	@Param		tenant	query		string	true	"Tenant slug"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/analytics/job/{code} [get]
func (h *AnalyticsHandler) GetJobDetail(c *gin.Context) {
	result, err := h.detailUC.Execute(c.Request.Context(), usecases.GetJobDetailQuery{
		TenantSlug: c.Query("tenant"),
		Code:       c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportJobDetail handles GET /analytics/job/:code/export?tenant=<slug>
func (h *AnalyticsHandler) ExportJobDetail(c *gin.Context) {
	h.export(c, c.Query("tenant"))
}

// ExportOwnJobDetail handles GET /jobs/:code/analytics/export for the signed-in tenant.
func (h *AnalyticsHandler) ExportOwnJobDetail(c *gin.Context) {
	h.export(c, c.GetString(constants.ContextKeyTenantSlug))
}

func (h *AnalyticsHandler) export(c *gin.Context, tenantSlug string) {
	result, err := h.exportUC.Execute(c.Request.Context(), usecases.GetJobDetailQuery{
		TenantSlug: tenantSlug,
		Code:       c.Param("code"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
