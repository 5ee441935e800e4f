package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
	"github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

const dateLayout = "2006-01-02"

type JobHandler struct {
	createJobUC createJobUseCase
	updateJobUC updateJobUseCase
	getJobUC    getJobUseCase
	listJobsUC  listJobsUseCase
	deleteJobUC deleteJobUseCase
	logger      logger.Interface
}

func NewJobHandler(
	createJobUC createJobUseCase,
	updateJobUC updateJobUseCase,
	getJobUC getJobUseCase,
	listJobsUC listJobsUseCase,
	deleteJobUC deleteJobUseCase,
	logger logger.Interface,
) *JobHandler {
	return &JobHandler{
		createJobUC: createJobUC,
		updateJobUC: updateJobUC,
		getJobUC:    getJobUC,
		listJobsUC:  listJobsUC,
		deleteJobUC: deleteJobUC,
		logger:      logger,
	}
}

type CreateJobRequest struct {
	Code       string `json:"code" binding:"required,max=64"`
	Title      string `json:"title" binding:"required,max=255"`
	Body       string `json:"body" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=draft open closed"`
	Department string `json:"department" binding:"max=128"`
	Team       string `json:"team" binding:"max=128"`
	StartDate  string `json:"start_date"`
}

type UpdateJobRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	Body       *string `json:"body"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft open closed"`
	Department *string `json:"department" binding:"omitempty,max=128"`
	Team       *string `json:"team" binding:"omitempty,max=128"`
	StartDate  *string `json:"start_date"`
}

func parseStartDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.NewValidationError("start_date must be YYYY-MM-DD", s)
	}
	return &t, nil
}

// CreateJob handles POST /jobs
//
//	@Summary		Create a job description
//	@Description	Open jobs count against the plan's active job limit.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			request	body		CreateJobRequest	true	"Job"
//	@Success		201		{object}	utils.APIResponse{data=dto.JobDTO}
//	@Failure		400		{object}	utils.APIResponse
//	@Failure		402		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse
//	@Router			/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create job", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createJobUC.Execute(c.Request.Context(), usecases.CreateJobCommand{
		TenantID:   tenantID,
		Code:       req.Code,
		Title:      req.Title,
		Body:       req.Body,
		Status:     req.Status,
		Department: req.Department,
		Team:       req.Team,
		StartDate:  startDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Job created successfully")
}

// UpdateJob handles PUT /jobs/:code
func (h *JobHandler) UpdateJob(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update job", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	cmd := usecases.UpdateJobCommand{
		TenantID:   tenantID,
		Code:       c.Param("code"),
		Title:      req.Title,
		Body:       req.Body,
		Status:     req.Status,
		Department: req.Department,
		Team:       req.Team,
	}
	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.StartDate = startDate
	}

	result, err := h.updateJobUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job updated successfully", result)
}

// GetJob handles GET /jobs/:code
func (h *JobHandler) GetJob(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.getJobUC.Execute(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListJobs handles GET /jobs
//
//	@Summary	List the tenant's job descriptions
//	@Tags		jobs
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=[]dto.JobDTO}
//	@Router		/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.listJobsUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.Errorw("failed to list jobs", "error", err, "tenant_id", tenantID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteJob handles DELETE /jobs/:code
func (h *JobHandler) DeleteJob(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	if err := h.deleteJobUC.Execute(c.Request.Context(), tenantID, c.Param("code")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
