package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
)

func TestHandleWebhook_Rejections(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	f.verifier.configured = false
	_, err := f.webhook.Execute(ctx, HandleWebhookCommand{Payload: []byte("{}"), Signature: "sig"})
	assert.Equal(t, apperrors.ErrorTypeUnavailable, appErrorType(t, err))

	f.verifier.configured = true
	_, err = f.webhook.Execute(ctx, HandleWebhookCommand{Payload: []byte("{}")})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	assert.Equal(t, "no signature", appErr.Message)

	f.verifier.err = paymentgateway.ErrInvalidSignature
	_, err = f.webhook.Execute(ctx, HandleWebhookCommand{Payload: []byte("{}"), Signature: "sig"})
	appErr = apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "invalid signature", appErr.Message)
}

func TestHandleWebhook_UnknownAndFailingEvents(t *testing.T) {
	f := newBillingFixture(t)

	ignored := f.deliver(t, &paymentgateway.WebhookEvent{ID: "evt_1", Type: "charge.refunded"})
	assert.Equal(t, WebhookStatusSuccess, ignored.Status)
	assert.Equal(t, 1, f.webhooks["charge.refunded/"+WebhookStatusIgnored])

	failed := f.deliver(t, &paymentgateway.WebhookEvent{ID: "evt_2", Type: paymentgateway.EventSubscriptionUpdated})
	assert.Equal(t, WebhookStatusError, failed.Status)
	assert.NotEmpty(t, failed.Message)
	assert.Equal(t, 1, f.webhooks[paymentgateway.EventSubscriptionUpdated+"/"+WebhookStatusError])
}

func TestHandleWebhook_SubscriptionLifecycle(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	stored := f.subscribe(t, billing.TierStarter, true)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	result := f.deliver(t, &paymentgateway.WebhookEvent{
		ID:   "evt_upd",
		Type: paymentgateway.EventSubscriptionUpdated,
		Subscription: &paymentgateway.SubscriptionObject{
			ID:                 stored.GatewaySubscriptionID(),
			CustomerID:         stored.GatewayCustomerID(),
			Status:             "unpaid",
			CurrentPeriodStart: start,
			CurrentPeriodEnd:   end,
			LookupKey:          "ultra_annual",
		},
	})
	require.Equal(t, WebhookStatusSuccess, result.Status)

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPastDue, sub.Status())
	assert.Equal(t, billing.TierUltra, sub.Tier())
	assert.Equal(t, billing.CycleYearly, sub.Cycle())
	assert.True(t, end.Equal(sub.PeriodEnd()))

	f.deliver(t, &paymentgateway.WebhookEvent{
		ID:   "evt_del",
		Type: paymentgateway.EventSubscriptionDeleted,
		Subscription: &paymentgateway.SubscriptionObject{
			ID:         stored.GatewaySubscriptionID(),
			CustomerID: stored.GatewayCustomerID(),
			Status:     "canceled",
		},
	})
	sub, err = f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusCanceled, sub.Status())
	assert.NotNil(t, sub.CanceledAt())
}

func TestHandleWebhook_UnknownSubscriptionIsNotAnError(t *testing.T) {
	f := newBillingFixture(t)

	result := f.deliver(t, &paymentgateway.WebhookEvent{
		ID:           "evt_x",
		Type:         paymentgateway.EventSubscriptionCreated,
		Subscription: &paymentgateway.SubscriptionObject{ID: "sub_unknown", CustomerID: "cus_unknown", Status: "active"},
	})
	assert.Equal(t, WebhookStatusSuccess, result.Status)
}

func TestHandleWebhook_InvoiceFailureThenPayment(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	stored := f.subscribe(t, billing.TierStarter, true)

	invoice := &paymentgateway.InvoiceObject{
		ID:              "in_1",
		Number:          "INV-0001",
		CustomerID:      stored.GatewayCustomerID(),
		SubscriptionID:  stored.GatewaySubscriptionID(),
		PaymentIntentID: "pi_1",
		AmountDue:       decimal.NewFromInt(49),
		AmountPaid:      decimal.Zero,
		Currency:        "usd",
	}
	f.notifier.On("SendPaymentFailed", f.owner.Email, "$49.00", "INV-0001").Return(nil).Once()

	result := f.deliver(t, &paymentgateway.WebhookEvent{ID: "evt_f", Type: paymentgateway.EventInvoicePaymentFailed, Invoice: invoice})
	require.Equal(t, WebhookStatusSuccess, result.Status)
	f.notifier.AssertExpectations(t)

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPastDue, sub.Status())

	payments, err := f.repos.PaymentHistories.ListByTenant(ctx, f.tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, billing.PaymentFailed, payments[0].Status)
	assert.Equal(t, "Failed: Invoice INV-0001", payments[0].Description)
	assert.Equal(t, "USD", payments[0].Currency)

	paid := *invoice
	paid.AmountPaid = decimal.NewFromInt(49)
	for i := 0; i < 2; i++ {
		result = f.deliver(t, &paymentgateway.WebhookEvent{ID: "evt_p", Type: paymentgateway.EventInvoicePaymentSuccess, Invoice: &paid})
		require.Equal(t, WebhookStatusSuccess, result.Status)
	}

	payments, err = f.repos.PaymentHistories.ListByTenant(ctx, f.tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, billing.PaymentSucceeded, payments[0].Status)
	assert.True(t, decimal.NewFromInt(49).Equal(payments[0].Amount))

	sub, err = f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusActive, sub.Status())
}

func TestHandleWebhook_PaymentMethodAttached(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()
	stored := f.subscribe(t, billing.TierPro, true)

	f.deliver(t, &paymentgateway.WebhookEvent{
		ID:   "evt_pm",
		Type: paymentgateway.EventPaymentMethodAttached,
		PaymentMethod: &paymentgateway.PaymentMethodObject{
			ID:         "pm_1",
			CustomerID: stored.GatewayCustomerID(),
			Card:       &billing.PaymentMethod{Last4: "0005", Brand: "amex", ExpMonth: 8, ExpYear: 2032},
		},
	})

	sub, err := f.repos.Subscriptions.GetByTenantID(ctx, f.tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, sub.PaymentMethod())
	assert.Equal(t, "amex", sub.PaymentMethod().Brand)
	assert.Equal(t, 2032, sub.PaymentMethod().ExpYear)
}
