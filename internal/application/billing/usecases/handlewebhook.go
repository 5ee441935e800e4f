package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

const (
	WebhookStatusSuccess = "success"
	WebhookStatusError   = "error"
	WebhookStatusIgnored = "ignored"
)

type HandleWebhookCommand struct {
	Payload   []byte
	Signature string
}

// HandleWebhookResult is returned with HTTP 200 for every verified event, including
// events whose handler failed, so the gateway does not retry them.
type HandleWebhookResult struct {
	Status  string `json:"status"`
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
}

type webhookHandler func(ctx context.Context, event *paymentgateway.WebhookEvent) error

// HandleWebhookUseCase verifies gateway notifications and applies them to the
// subscription, payment and pending-signup records.
type HandleWebhookUseCase struct {
	verifier         paymentgateway.WebhookVerifier
	subscriptionRepo billing.SubscriptionRepository
	paymentRepo      billing.PaymentHistoryRepository
	pendingRepo      billing.PendingSignupRepository
	tenantRepo       recruiting.TenantRepository
	userRepo         recruiting.UserRepository
	txManager        TransactionManager
	notifier         BillingNotifier
	observer         WebhookObserver
	logger           logger.Interface
	now              func() time.Time
	handlers         map[string]webhookHandler
}

func NewHandleWebhookUseCase(
	verifier paymentgateway.WebhookVerifier,
	subscriptionRepo billing.SubscriptionRepository,
	paymentRepo billing.PaymentHistoryRepository,
	pendingRepo billing.PendingSignupRepository,
	tenantRepo recruiting.TenantRepository,
	userRepo recruiting.UserRepository,
	txManager TransactionManager,
	notifier BillingNotifier,
	logger logger.Interface,
) *HandleWebhookUseCase {
	uc := &HandleWebhookUseCase{
		verifier:         verifier,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		pendingRepo:      pendingRepo,
		tenantRepo:       tenantRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		notifier:         notifier,
		logger:           logger,
		now:              biztime.NowUTC,
	}
	uc.handlers = map[string]webhookHandler{
		paymentgateway.EventCheckoutCompleted:     uc.handleCheckoutCompleted,
		paymentgateway.EventSubscriptionCreated:   uc.handleSubscriptionChanged,
		paymentgateway.EventSubscriptionUpdated:   uc.handleSubscriptionChanged,
		paymentgateway.EventSubscriptionDeleted:   uc.handleSubscriptionDeleted,
		paymentgateway.EventInvoicePaymentSuccess: uc.handleInvoicePaid,
		paymentgateway.EventInvoicePaymentFailed:  uc.handleInvoiceFailed,
		paymentgateway.EventPaymentMethodAttached: uc.handlePaymentMethodAttached,
		paymentgateway.EventCustomerCreated:       uc.handleCustomerCreated,
	}
	return uc
}

// WithObserver records one outcome per processed event.
func (uc *HandleWebhookUseCase) WithObserver(observer WebhookObserver) *HandleWebhookUseCase {
	uc.observer = observer
	return uc
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) (*HandleWebhookResult, error) {
	if uc.verifier == nil || !uc.verifier.Configured() {
		uc.logger.Warnw("webhook received but payment gateway is not configured")
		return nil, apperrors.NewUnavailableError("payment gateway not configured")
	}

	event, err := uc.verifier.Verify(cmd.Payload, cmd.Signature)
	if err != nil {
		uc.logger.Warnw("webhook rejected", "error", err)
		switch {
		case errors.Is(err, paymentgateway.ErrMissingSignature):
			return nil, apperrors.NewBadRequestError("no signature")
		case errors.Is(err, paymentgateway.ErrInvalidSignature):
			return nil, apperrors.NewBadRequestError("invalid signature")
		default:
			return nil, apperrors.NewBadRequestError("invalid payload")
		}
	}

	uc.logger.Infow("processing webhook", "event_type", event.Type, "event_id", event.ID)

	handler, ok := uc.handlers[event.Type]
	if !ok {
		uc.logger.Debugw("unhandled webhook event type", "event_type", event.Type)
		uc.record(event.Type, WebhookStatusIgnored)
		return &HandleWebhookResult{Status: WebhookStatusSuccess, Event: event.Type}, nil
	}

	if err := handler(ctx, event); err != nil {
		uc.logger.Errorw("error processing webhook",
			"event_type", event.Type,
			"event_id", event.ID,
			"error", err,
		)
		uc.record(event.Type, WebhookStatusError)
		return &HandleWebhookResult{Status: WebhookStatusError, Event: event.Type, Message: err.Error()}, nil
	}

	uc.record(event.Type, WebhookStatusSuccess)
	return &HandleWebhookResult{Status: WebhookStatusSuccess, Event: event.Type}, nil
}

func (uc *HandleWebhookUseCase) record(eventType, status string) {
	if uc.observer != nil {
		uc.observer.RecordWebhook(eventType, status)
	}
}
