package http

import (
	analyticsUsecases "github.com/hireloop/hireloop/internal/application/analytics/usecases"
	authUsecases "github.com/hireloop/hireloop/internal/application/auth/usecases"
	billingUsecases "github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	loginUC *authUsecases.LoginUseCase

	// Jobs
	createJobUC     *usecases.CreateJobUseCase
	updateJobUC     *usecases.UpdateJobUseCase
	getJobUC        *usecases.GetJobUseCase
	listJobsUC      *usecases.ListJobsUseCase
	deleteJobUC     *usecases.DeleteJobUseCase
	getJobPostingUC *usecases.GetJobPostingUseCase

	// Candidates & screening
	applyForJobUC    *usecases.ApplyForJobUseCase
	submitAnswersUC  *usecases.SubmitAnswersUseCase
	listCandidatesUC *usecases.ListCandidatesUseCase
	candidatesUC     *usecases.CandidatesUseCase

	// Analytics
	getJobSummariesUC *analyticsUsecases.GetJobSummariesUseCase
	getJobDetailUC    *analyticsUsecases.GetJobDetailUseCase
	exportJobDetailUC *analyticsUsecases.ExportJobDetailUseCase

	// Billing
	signupUC              *billingUsecases.SignupUseCase
	accountStatusUC       *billingUsecases.AccountStatusUseCase
	usageSummaryUC        *billingUsecases.GetUsageSummaryUseCase
	checkCapabilityUC     *billingUsecases.CheckCapabilityUseCase
	changePlanUC          *billingUsecases.ChangePlanUseCase
	addSeatsUC            *billingUsecases.AddSeatsUseCase
	cancelSubscriptionUC  *billingUsecases.CancelSubscriptionUseCase
	updatePaymentMethodUC *billingUsecases.UpdatePaymentMethodUseCase
	listPaymentsUC        *billingUsecases.ListPaymentsUseCase
	getPlansUC            *billingUsecases.GetPlansUseCase
	handleWebhookUC       *billingUsecases.HandleWebhookUseCase
}
