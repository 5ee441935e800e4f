package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

// BillingUseCases groups the use cases behind BillingHandler.
type BillingUseCases struct {
	Signup              signupUseCase
	AccountStatus       accountStatusUseCase
	UsageSummary        usageSummaryUseCase
	Capability          checkCapabilityUseCase
	ChangePlan          changePlanUseCase
	AddSeats            addSeatsUseCase
	Cancel              cancelSubscriptionUseCase
	UpdatePaymentMethod updatePaymentMethodUseCase
	ListPayments        listPaymentsUseCase
	GetPlans            getPlansUseCase
}

type BillingHandler struct {
	uc     BillingUseCases
	logger logger.Interface
}

func NewBillingHandler(uc BillingUseCases, logger logger.Interface) *BillingHandler {
	return &BillingHandler{uc: uc, logger: logger}
}

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	CompanyName string `json:"company_name" binding:"required,max=255"`
	FullName    string `json:"full_name" binding:"max=255"`
	PlanTier    string `json:"plan_tier" binding:"omitempty,oneof=free starter pro ultra"`
	Cycle       string `json:"billing_cycle" binding:"omitempty,oneof=monthly yearly"`
}

type ChangePlanRequest struct {
	PlanTier string `json:"plan_tier" binding:"required,oneof=free starter pro ultra"`
	Cycle    string `json:"billing_cycle" binding:"omitempty,oneof=monthly yearly"`
}

type AddSeatsRequest struct {
	Seats int `json:"seats" binding:"required,min=1,max=10"`
}

type PaymentMethodRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	ExpMonth   int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear    int    `json:"exp_year" binding:"required"`
	CVC        string `json:"cvc" binding:"required,min=3,max=4"`
}

// GetPlans handles GET /plans
//
//	@Summary	Plan catalog
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse
//	@Router		/plans [get]
func (h *BillingHandler) GetPlans(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.uc.GetPlans.Execute(c.Request.Context()))
}

// Signup handles POST /billing/signup
//
//	@Summary		Start a signup
//	@Description	Stores a pending signup and returns the hosted payment link. Repeating the call for the same email overwrites the pending signup.
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignupRequest	true	"Signup form"
//	@Success		200		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse
//	@Failure		503		{object}	utils.APIResponse
//	@Router			/billing/signup [post]
func (h *BillingHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.uc.Signup.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		FullName:    req.FullName,
		Tier:        req.PlanTier,
		Cycle:       req.Cycle,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Continue to payment", result)
}

// AccountStatus handles GET /billing/account-status?email=
func (h *BillingHandler) AccountStatus(c *gin.Context) {
	result, err := h.uc.AccountStatus.Execute(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUsage handles GET /billing/usage
//
//	@Summary	Plan, limits and usage of the signed-in tenant
//	@Tags		billing
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=dto.UsageSummaryDTO}
//	@Router		/billing/usage [get]
func (h *BillingHandler) GetUsage(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.uc.UsageSummary.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckLimit handles GET /billing/limits/:resource
func (h *BillingHandler) CheckLimit(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.uc.Capability.CheckLimit(c.Request.Context(), tenantID, c.Param("resource"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckFeature handles GET /billing/features/:feature
func (h *BillingHandler) CheckFeature(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.uc.Capability.CheckFeature(c.Request.Context(), tenantID, c.Param("feature"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePlan handles POST /billing/change-plan
func (h *BillingHandler) ChangePlan(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.uc.ChangePlan.Execute(c.Request.Context(), usecases.ChangePlanCommand{
		TenantID: tenantID,
		Tier:     req.PlanTier,
		Cycle:    req.Cycle,
	})
	if err != nil {
		h.logger.Warnw("plan change failed", "error", err, "tenant_id", tenantID, "tier", req.PlanTier)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// AddSeats handles POST /billing/add-seats
func (h *BillingHandler) AddSeats(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	var req AddSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.uc.AddSeats.Execute(c.Request.Context(), usecases.AddSeatsCommand{
		TenantID: tenantID,
		Seats:    req.Seats,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Seats added", result)
}

// Cancel handles POST /billing/cancel
func (h *BillingHandler) Cancel(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.uc.Cancel.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription canceled", result)
}

// UpdatePaymentMethod handles POST /billing/payment-method
func (h *BillingHandler) UpdatePaymentMethod(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.uc.UpdatePaymentMethod.Execute(c.Request.Context(), usecases.UpdatePaymentMethodCommand{
		TenantID:   tenantID,
		CardNumber: req.CardNumber,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		CVC:        req.CVC,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment method updated", result)
}

// ListPayments handles GET /billing/payments
func (h *BillingHandler) ListPayments(c *gin.Context) {
	tenantID, ok := currentTenant(c)
	if !ok {
		return
	}

	result, err := h.uc.ListPayments.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
