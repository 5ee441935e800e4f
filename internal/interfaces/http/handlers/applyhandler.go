package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
	"github.com/hireloop/hireloop/internal/domain/screening"
	"github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

type getJobPostingUseCase interface {
	Execute(ctx context.Context, slug string) (*dto.JobPostingDTO, error)
}

type applyForJobUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApplyForJobCommand) (*dto.ApplicationDTO, error)
}

type submitAnswersUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitAnswersCommand) (*dto.AnswerScoresDTO, error)
}

// ApplyHandler serves the public candidate flow: read the posting, upload a résumé,
// answer the verification questions.
type ApplyHandler struct {
	postingUC      getJobPostingUseCase
	applyUC        applyForJobUseCase
	answersUC      submitAnswersUseCase
	maxUploadBytes int64
	logger         logger.Interface
}

func NewApplyHandler(
	postingUC getJobPostingUseCase,
	applyUC applyForJobUseCase,
	answersUC submitAnswersUseCase,
	maxUploadMB int64,
	logger logger.Interface,
) *ApplyHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &ApplyHandler{
		postingUC:      postingUC,
		applyUC:        applyUC,
		answersUC:      answersUC,
		maxUploadBytes: maxUploadMB << 20,
		logger:         logger,
	}
}

// GetPosting handles GET /apply/:slug
func (h *ApplyHandler) GetPosting(c *gin.Context) {
	result, err := h.postingUC.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Apply handles POST /apply/:slug
//
//	@Summary		Apply to a job with a résumé
//	@Description	Screens the résumé and returns the verification questions.
//	@Tags			apply
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			slug		path		string	true	"Job slug"
//	@Param			name		formData	string	true	"Candidate name"
//	@Param			resume_file	formData	file	true	"Résumé (.pdf, .docx, .doc, .rtf, .odt, .txt)"
//	@Success		201			{object}	utils.APIResponse
//	@Failure		400			{object}	utils.APIResponse
//	@Failure		402			{object}	utils.APIResponse
//	@Failure		502			{object}	utils.APIResponse
//	@Router			/apply/{slug} [post]
func (h *ApplyHandler) Apply(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("resume_file")
	if err != nil {
		h.logger.Warnw("missing resume upload", "error", err, "slug", c.Param("slug"))
		utils.ErrorResponseWithError(c, errors.NewValidationError("resume_file is required"))
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			fmt.Sprintf("resume_file exceeds %d MB", h.maxUploadBytes>>20)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded resume", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read resume_file"))
		return
	}
	defer file.Close()

	result, err := h.applyUC.Execute(c.Request.Context(), usecases.ApplyForJobCommand{
		Slug:     c.Param("slug"),
		Name:     c.PostForm("name"),
		Filename: fileHeader.Filename,
		File:     file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Application received")
}

// SubmitAnswers handles POST /answers/:candidateID with form fields a0..a3.
func (h *ApplyHandler) SubmitAnswers(c *gin.Context) {
	answers := make([]string, screening.QuestionCount)
	for i := range answers {
		answers[i] = c.PostForm(fmt.Sprintf("a%d", i))
	}

	result, err := h.answersUC.Execute(c.Request.Context(), usecases.SubmitAnswersCommand{
		CandidateID: c.Param("candidateID"),
		Answers:     answers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Answers scored", result)
}
