package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/infrastructure/repository/repotest"
	"github.com/hireloop/hireloop/internal/shared/db"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendWelcome(to, fullName, companyName, tenantSlug string) error {
	return m.Called(to, fullName, companyName, tenantSlug).Error(0)
}

func (m *mockNotifier) SendPaymentFailed(to, amount, invoice string) error {
	return m.Called(to, amount, invoice).Error(0)
}

// stubVerifier hands back queued events regardless of the signature.
type stubVerifier struct {
	configured bool
	event      *paymentgateway.WebhookEvent
	err        error
}

func (v *stubVerifier) Configured() bool { return v.configured }

func (v *stubVerifier) Verify(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if signature == "" {
		return nil, paymentgateway.ErrMissingSignature
	}
	return v.event, v.err
}

type webhookCounter map[string]int

func (c webhookCounter) RecordWebhook(eventType, status string) {
	c[eventType+"/"+status]++
}

type billingFixture struct {
	repos    *repotest.Repositories
	tenant   *recruiting.Tenant
	owner    *recruiting.User
	store    *paymentgateway.MemoryStore
	gateway  *paymentgateway.MockGateway
	catalog  *billing.Catalog
	quota    *quota.Service
	tx       *db.TransactionManager
	notifier *mockNotifier
	verifier *stubVerifier
	webhooks webhookCounter
	signup   *SignupUseCase
	webhook  *HandleWebhookUseCase
	log      logger.Interface
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	repos := repotest.New(t)
	log := logger.NewNopLogger()
	tenant, owner := repos.SeedTenant(t, "acme")

	store := paymentgateway.NewMemoryStore()
	catalog := billing.DefaultCatalog()
	tx := db.NewTransactionManager(repos.DB)
	notifier := &mockNotifier{}
	verifier := &stubVerifier{configured: true}
	webhooks := webhookCounter{}

	links := map[string]string{
		"pro_monthly":     "https://pay.test/pro",
		"ultra_yearly":    "https://pay.test/ultra-yearly",
		"starter_monthly": "https://pay.test/starter",
	}

	f := &billingFixture{
		repos:    repos,
		tenant:   tenant,
		owner:    owner,
		store:    store,
		gateway:  paymentgateway.NewMockGateway(store),
		catalog:  catalog,
		tx:       tx,
		notifier: notifier,
		verifier: verifier,
		webhooks: webhooks,
		log:      log,
	}
	f.quota = quota.NewService(repos.Subscriptions, repos.Usage, repos.Jobs, repos.Users, billing.NewGate(catalog), log)
	f.signup = NewSignupUseCase(repos.Users, repos.PendingSignups, auth.NewBcryptPasswordHasher(4), links, log)
	f.webhook = NewHandleWebhookUseCase(verifier, repos.Subscriptions, repos.PaymentHistories, repos.PendingSignups,
		repos.Tenants, repos.Users, tx, notifier, log).WithObserver(webhooks)
	return f
}

// subscribe stores a subscription for the seeded tenant, optionally backed by a mock
// gateway customer with a card on file and a gateway subscription.
func (f *billingFixture) subscribe(t *testing.T, tier billing.Tier, withGateway bool) *billing.TenantSubscription {
	t.Helper()
	ctx := context.Background()

	sub, err := billing.NewTenantSubscription(f.tenant.ID, tier, billing.CycleMonthly, time.Now().UTC())
	require.NoError(t, err)

	if withGateway {
		customer, err := f.gateway.CreateCustomer(ctx, f.owner.Email, "Acme")
		require.NoError(t, err)
		card, err := f.gateway.AttachPaymentMethod(ctx, customer.CustomerID, paymentgateway.CardDetails{
			Number: "4242 4242 4242 4242", ExpMonth: 12, ExpYear: 2030, CVC: "123",
		})
		require.NoError(t, err)
		require.True(t, card.Success)
		created, err := f.gateway.CreateSubscription(ctx, customer.CustomerID, tier, billing.CycleMonthly)
		require.NoError(t, err)
		require.True(t, created.Success)
		sub.SetGatewayIDs(customer.CustomerID, created.SubscriptionID)
		sub.SetPaymentMethod(*card.Card)
	}

	require.NoError(t, f.repos.Subscriptions.Create(ctx, sub))
	return sub
}

func (f *billingFixture) deliver(t *testing.T, event *paymentgateway.WebhookEvent) *HandleWebhookResult {
	t.Helper()
	f.verifier.event = event
	result, err := f.webhook.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}"), Signature: "t=1,v1=x"})
	require.NoError(t, err)
	return result
}

func checkoutEvent(email string) *paymentgateway.WebhookEvent {
	return &paymentgateway.WebhookEvent{
		ID:   "evt_checkout",
		Type: paymentgateway.EventCheckoutCompleted,
		Checkout: &paymentgateway.CheckoutObject{
			ID:             "cs_1",
			CustomerID:     "cus_new",
			SubscriptionID: "sub_new",
			Email:          email,
		},
	}
}

func appErrorType(t *testing.T, err error) apperrors.ErrorType {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Type
}

func TestSignup_Validation(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  SignupCommand
	}{
		{"missing email", SignupCommand{Password: "secret1", CompanyName: "Beta", Tier: "pro"}},
		{"email without at", SignupCommand{Email: "jane.example.com", Password: "secret1", CompanyName: "Beta", Tier: "pro"}},
		{"short password", SignupCommand{Email: "jane@example.com", Password: "12345", CompanyName: "Beta", Tier: "pro"}},
		{"missing company", SignupCommand{Email: "jane@example.com", Password: "secret1", Tier: "pro"}},
		{"unknown tier", SignupCommand{Email: "jane@example.com", Password: "secret1", CompanyName: "Beta", Tier: "platinum"}},
		{"unknown cycle", SignupCommand{Email: "jane@example.com", Password: "secret1", CompanyName: "Beta", Tier: "pro", Cycle: "weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.signup.Execute(ctx, tt.cmd)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))
		})
	}

	_, err := f.repos.PendingSignups.GetByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, billing.ErrPendingSignupNotFound)
}

func TestSignup_ExistingAccountAndMissingLink(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	_, err := f.signup.Execute(ctx, SignupCommand{
		Email: "  OWNER@acme.test ", Password: "secret1", CompanyName: "Acme", Tier: "pro",
	})
	assert.Equal(t, apperrors.ErrorTypeConflict, appErrorType(t, err))

	_, err = f.signup.Execute(ctx, SignupCommand{
		Email: "jane@example.com", Password: "secret1", CompanyName: "Beta", Tier: "ultra", Cycle: "monthly",
	})
	assert.Equal(t, apperrors.ErrorTypeUnavailable, appErrorType(t, err))
}

func TestSignup_PaymentLink(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	result, err := f.signup.Execute(ctx, SignupCommand{
		Email: "Jane@Example.com", Password: "secret1", CompanyName: "Beta Corp", FullName: "Jane", Tier: "PRO",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/pro?prefilled_email=jane%40example.com", result.PaymentLink)
	assert.Equal(t, billing.TierPro, result.Tier)
	assert.Equal(t, billing.CycleMonthly, result.Cycle)

	pending, err := f.repos.PendingSignups.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Beta Corp", pending.CompanyName)
	assert.NotEqual(t, "secret1", pending.PasswordHash)
	assert.False(t, pending.Processed)
	assert.WithinDuration(t, pending.CreatedAt.Add(billing.PendingSignupTTL), pending.ExpiresAt, time.Second)
}

func TestSignup_OverwriteThenSingleAccount(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	_, err := f.signup.Execute(ctx, SignupCommand{
		Email: "jane@example.com", Password: "secret1", CompanyName: "Alpha", FullName: "Jane", Tier: "pro",
	})
	require.NoError(t, err)
	_, err = f.signup.Execute(ctx, SignupCommand{
		Email: "jane@example.com", Password: "secret2", CompanyName: "Beta Corp", FullName: "Jane Doe",
		Tier: "ultra", Cycle: "yearly",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.repos.DB.Table("pending_signups").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	f.notifier.On("SendWelcome", "jane@example.com", "Jane Doe", "Beta Corp", "beta-corp").Return(nil).Once()

	first := f.deliver(t, checkoutEvent("JANE@example.com"))
	assert.Equal(t, WebhookStatusSuccess, first.Status)
	replay := f.deliver(t, checkoutEvent("jane@example.com"))
	assert.Equal(t, WebhookStatusSuccess, replay.Status)
	f.notifier.AssertExpectations(t)

	user, err := f.repos.Users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsOwner())
	assert.Equal(t, "Jane Doe", user.FullName)
	require.NoError(t, auth.NewBcryptPasswordHasher(4).Verify("secret2", user.PasswordHash))

	tenant, err := f.repos.Tenants.GetBySlug(ctx, "beta-corp")
	require.NoError(t, err)
	assert.Equal(t, user.TenantID, tenant.ID)
	exists, err := f.repos.Tenants.SlugExists(ctx, "beta-corp-1")
	require.NoError(t, err)
	assert.False(t, exists)

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.TierUltra, sub.Tier())
	assert.Equal(t, billing.CycleYearly, sub.Cycle())
	assert.Equal(t, billing.StatusActive, sub.Status())
	assert.Equal(t, "cus_new", sub.GatewayCustomerID())
	assert.Equal(t, "sub_new", sub.GatewaySubscriptionID())

	pending, err := f.repos.PendingSignups.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, pending.Processed)

	status, err := NewAccountStatusUseCase(f.repos.Users, f.repos.Tenants, f.log).Execute(ctx, "Jane@example.com")
	require.NoError(t, err)
	assert.True(t, status.AccountCreated)
	assert.Equal(t, "beta-corp", status.TenantSlug)
	assert.Equal(t, 2, f.webhooks[paymentgateway.EventCheckoutCompleted+"/"+WebhookStatusSuccess])
}

func TestCheckout_SlugCollisionAndExpiry(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	f.notifier.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.signup.Execute(ctx, SignupCommand{
		Email: "cto@acme.io", Password: "secret1", CompanyName: "Acme", Tier: "starter",
	})
	require.NoError(t, err)
	f.deliver(t, checkoutEvent("cto@acme.io"))

	user, err := f.repos.Users.GetByEmail(ctx, "cto@acme.io")
	require.NoError(t, err)
	tenant, err := f.repos.Tenants.GetByID(ctx, user.TenantID)
	require.NoError(t, err)
	assert.Equal(t, "acme-1", tenant.Slug)

	_, err = f.signup.Execute(ctx, SignupCommand{
		Email: "late@example.com", Password: "secret1", CompanyName: "Late Co", Tier: "pro",
	})
	require.NoError(t, err)
	f.webhook.now = func() time.Time { return time.Now().UTC().Add(25 * time.Hour) }
	result := f.deliver(t, checkoutEvent("late@example.com"))
	assert.Equal(t, WebhookStatusSuccess, result.Status)

	_, err = f.repos.Users.GetByEmail(ctx, "late@example.com")
	assert.ErrorIs(t, err, recruiting.ErrUserNotFound)
}

func TestAccountStatus_NotYetCreated(t *testing.T) {
	f := newBillingFixture(t)

	status, err := NewAccountStatusUseCase(f.repos.Users, f.repos.Tenants, f.log).Execute(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, status.AccountCreated)
	assert.Empty(t, status.TenantSlug)

	_, err = NewAccountStatusUseCase(f.repos.Users, f.repos.Tenants, f.log).Execute(context.Background(), " ")
	assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))
}

func TestChangePlan(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	uc := NewChangePlanUseCase(f.repos.Subscriptions, f.repos.PaymentHistories, f.gateway, f.catalog, f.tx, f.log)

	_, err := uc.Execute(ctx, ChangePlanCommand{TenantID: f.tenant.ID, Tier: "pro"})
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErrorType(t, err))

	stored := f.subscribe(t, billing.TierStarter, true)

	_, err = uc.Execute(ctx, ChangePlanCommand{TenantID: f.tenant.ID, Tier: "gold"})
	assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))

	result, err := uc.Execute(ctx, ChangePlanCommand{TenantID: f.tenant.ID, Tier: "pro"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(80).Equal(result.Charged), result.Charged.String())
	assert.Equal(t, billing.CycleMonthly, result.Cycle)

	gatewaySub, ok := f.store.Subscription(stored.GatewaySubscriptionID())
	require.True(t, ok)
	assert.Equal(t, billing.TierPro, gatewaySub.Tier)

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.TierPro, sub.Tier())

	downgrade, err := uc.Execute(ctx, ChangePlanCommand{TenantID: f.tenant.ID, Tier: "free"})
	require.NoError(t, err)
	assert.True(t, downgrade.Charged.IsZero())

	payments, err := f.repos.PaymentHistories.ListByTenant(ctx, f.tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	descriptions := []string{payments[0].Description, payments[1].Description}
	assert.Contains(t, descriptions, "Plan change to Pro (monthly)")
	assert.Equal(t, "4242", payments[0].CardLast4)
}

func TestAddSeats(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	uc := NewAddSeatsUseCase(f.repos.Subscriptions, f.repos.PaymentHistories, f.gateway, f.catalog, f.tx, f.log)

	_, err := uc.Execute(ctx, AddSeatsCommand{TenantID: f.tenant.ID, Seats: 11})
	assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))

	f.subscribe(t, billing.TierPro, true)

	result, err := uc.Execute(ctx, AddSeatsCommand{TenantID: f.tenant.ID, Seats: 2})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(result.Charged))
	assert.Equal(t, 2, result.ExtraSeats)
	assert.Equal(t, 5, result.TotalSeats)
	assert.NotEmpty(t, result.PaymentID)

	charges := f.store.Charges()
	require.Len(t, charges, 1)
	assert.Equal(t, "Added 2 additional seat(s)", charges[0].Description)

	payments, err := f.repos.PaymentHistories.ListByTenant(ctx, f.tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 2, payments[0].ExtraSeats)
	assert.Equal(t, result.PaymentID, payments[0].GatewayPaymentID)

	check, err := f.quota.CheckLimit(ctx, f.tenant.ID, billing.ResourceSeats)
	require.NoError(t, err)
	assert.Equal(t, 5, check.Limit)
}

func TestAddSeats_RequiresGatewayCustomer(t *testing.T) {
	f := newBillingFixture(t)
	f.subscribe(t, billing.TierPro, false)
	uc := NewAddSeatsUseCase(f.repos.Subscriptions, f.repos.PaymentHistories, f.gateway, f.catalog, f.tx, f.log)

	_, err := uc.Execute(context.Background(), AddSeatsCommand{TenantID: f.tenant.ID, Seats: 1})
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErrorType(t, err))
	assert.Empty(t, f.store.Charges())
}

func TestCancelSubscription(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	stored := f.subscribe(t, billing.TierStarter, true)
	uc := NewCancelSubscriptionUseCase(f.repos.Subscriptions, f.gateway, f.log)

	result, err := uc.Execute(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusCanceled, result.Status)
	require.NotNil(t, result.CanceledAt)

	gatewaySub, ok := f.store.Subscription(stored.GatewaySubscriptionID())
	require.True(t, ok)
	assert.True(t, gatewaySub.CancelAtPeriodEnd)

	_, err = uc.Execute(ctx, f.tenant.ID)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErrorType(t, err))
}

func TestUpdatePaymentMethod(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	f.subscribe(t, billing.TierStarter, true)
	uc := NewUpdatePaymentMethodUseCase(f.repos.Subscriptions, f.gateway, f.log)

	_, err := uc.Execute(ctx, UpdatePaymentMethodCommand{
		TenantID: f.tenant.ID, CardNumber: "4000000000000002", ExpMonth: 1, ExpYear: 2031, CVC: "123",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	assert.Equal(t, "Your card was declined.", appErr.Message)

	card, err := uc.Execute(ctx, UpdatePaymentMethodCommand{
		TenantID: f.tenant.ID, CardNumber: "5555-5555-5555-4444", ExpMonth: 3, ExpYear: 2031, CVC: "321",
	})
	require.NoError(t, err)
	assert.Equal(t, "mastercard", card.Brand)
	assert.Equal(t, "4444", card.Last4)

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, sub.PaymentMethod())
	assert.Equal(t, "4444", sub.PaymentMethod().Last4)
	assert.Equal(t, 3, sub.PaymentMethod().ExpMonth)
}

func TestUsageSummary(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	uc := NewGetUsageSummaryUseCase(f.quota, f.log)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Engineer", nil)

	grandfathered, err := uc.Execute(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.True(t, grandfathered.IsGrandfathered)
	assert.Equal(t, billing.UnlimitedSentinel, grandfathered.JobsLimit)
	assert.Equal(t, billing.UnlimitedSentinel, grandfathered.ResumesLimit)
	assert.Equal(t, billing.UnlimitedSentinel, grandfathered.SeatsLimit)
	assert.Equal(t, 1, grandfathered.JobsUsed)
	assert.Equal(t, 1, grandfathered.SeatsUsed)
	assert.True(t, grandfathered.HasAnalytics)
	assert.Nil(t, grandfathered.PeriodEnd)

	f.subscribe(t, billing.TierFree, false)
	free, err := uc.Execute(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.False(t, free.IsGrandfathered)
	assert.Equal(t, "Free", free.PlanDisplay)
	assert.Equal(t, 1, free.JobsLimit)
	assert.Equal(t, 25, free.ResumesLimit)
	assert.Equal(t, 1, free.SeatsLimit)
	assert.Equal(t, 0, free.ResumesUsed)
	assert.False(t, free.HasClaimValidity)
	assert.False(t, free.HasRedFlag)
	assert.False(t, free.HasAnalytics)
	assert.NotNil(t, free.PeriodEnd)
}

func TestCheckCapability(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	uc := NewCheckCapabilityUseCase(f.quota, f.log)

	_, err := uc.CheckLimit(ctx, f.tenant.ID, "storage")
	assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))
	_, err = uc.CheckFeature(ctx, f.tenant.ID, "teleport")
	assert.Equal(t, apperrors.ErrorTypeValidation, appErrorType(t, err))

	unlimited, err := uc.CheckLimit(ctx, f.tenant.ID, "jobs")
	require.NoError(t, err)
	assert.False(t, unlimited.LimitReached)
	assert.Equal(t, billing.UnlimitedSentinel, unlimited.Limit)
	assert.Nil(t, unlimited.Notification)

	f.subscribe(t, billing.TierFree, false)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Engineer", nil)

	jobs, err := uc.CheckLimit(ctx, f.tenant.ID, "active_jobs")
	require.NoError(t, err)
	assert.True(t, jobs.LimitReached)
	assert.Equal(t, 0, jobs.Remaining)
	require.NotNil(t, jobs.Notification)
	assert.Equal(t, billing.ActionSeePlans, jobs.Notification.CTAAction)

	analytics, err := uc.CheckFeature(ctx, f.tenant.ID, "full_analytics_engine")
	require.NoError(t, err)
	assert.False(t, analytics.HasAccess)
	require.NotNil(t, analytics.Notification)

	board, err := uc.CheckFeature(ctx, f.tenant.ID, "job_board")
	require.NoError(t, err)
	assert.True(t, board.HasAccess)
}

func TestGetPlans(t *testing.T) {
	plans := NewGetPlansUseCase(billing.DefaultCatalog()).Execute(context.Background())
	require.Len(t, plans.Plans, 4)
	assert.Equal(t, billing.TierFree, plans.Plans[0].Tier)
	assert.True(t, decimal.NewFromInt(20).Equal(plans.ExtraSeatPriceMonthly))
}
