package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/shared/constants"
	"github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

const maxWebhookPayloadBytes = 1 << 20

type WebhookHandler struct {
	handleWebhookUC handleWebhookUseCase
	logger          logger.Interface
}

func NewWebhookHandler(handleWebhookUC handleWebhookUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		handleWebhookUC: handleWebhookUC,
		logger:          logger,
	}
}

// HandleWebhook handles POST /billing/webhook
//
// Verified events are always acknowledged with 200 and {"status": ...}, including
// events whose processing failed; the gateway would otherwise redeliver them.
//
//	@Summary	Payment gateway webhook
//	@Tags		billing
//	@Accept		json
//	@Produce	json
//	@Param		Stripe-Signature	header		string	true	"Signature"
//	@Success	200					{object}	usecases.HandleWebhookResult
//	@Failure	400					{object}	utils.APIResponse
//	@Failure	503					{object}	utils.APIResponse
//	@Router		/billing/webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayloadBytes))
	if err != nil {
		h.logger.Warnw("failed to read webhook payload", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid payload"))
		return
	}

	result, err := h.handleWebhookUC.Execute(c.Request.Context(), usecases.HandleWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader(constants.HeaderStripeSignature),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
