package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
)

var errMissingObject = errors.New("event carries no object")

// findSubscription looks the subscription up by gateway subscription id, falling back
// to the customer id. It returns nil when neither matches.
func (uc *HandleWebhookUseCase) findSubscription(ctx context.Context, subscriptionID, customerID string) (*billing.TenantSubscription, error) {
	if subscriptionID != "" {
		sub, err := uc.subscriptionRepo.GetByGatewaySubscriptionID(ctx, subscriptionID)
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, billing.ErrSubscriptionNotFound) {
			return nil, err
		}
	}
	if customerID != "" {
		sub, err := uc.subscriptionRepo.GetByGatewayCustomerID(ctx, customerID)
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, billing.ErrSubscriptionNotFound) {
			return nil, err
		}
	}
	uc.logger.Warnw("subscription not found for webhook",
		"customer_id", customerID,
		"subscription_id", subscriptionID,
	)
	return nil, nil
}

func (uc *HandleWebhookUseCase) handleSubscriptionChanged(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	obj := event.Subscription
	if obj == nil {
		return errMissingObject
	}
	sub, err := uc.findSubscription(ctx, obj.ID, obj.CustomerID)
	if err != nil || sub == nil {
		return err
	}

	sub.SetStatus(billing.StatusFromGateway(obj.Status))
	if !obj.CurrentPeriodStart.IsZero() && !obj.CurrentPeriodEnd.IsZero() {
		sub.SetPeriod(obj.CurrentPeriodStart, obj.CurrentPeriodEnd)
	}
	if event.Type == paymentgateway.EventSubscriptionUpdated && obj.LookupKey != "" {
		if tier, cycle, ok := paymentgateway.ParseLookupKey(obj.LookupKey); ok && tier.IsValid() && !sub.IsGrandfathered() {
			if err := sub.ChangePlan(tier, cycle); err != nil {
				return err
			}
		}
	}
	sub.SetGatewayIDs(obj.CustomerID, obj.ID)

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	uc.logger.Infow("subscription synced from gateway",
		"tenant_id", sub.TenantID(),
		"status", sub.Status(),
		"plan_tier", sub.Tier(),
	)
	return nil
}

func (uc *HandleWebhookUseCase) handleSubscriptionDeleted(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	obj := event.Subscription
	if obj == nil {
		return errMissingObject
	}
	sub, err := uc.findSubscription(ctx, obj.ID, obj.CustomerID)
	if err != nil || sub == nil {
		return err
	}

	sub.SetStatus(billing.StatusCanceled)
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	uc.logger.Infow("subscription deleted on gateway", "tenant_id", sub.TenantID())
	return nil
}

func (uc *HandleWebhookUseCase) recordInvoice(ctx context.Context, inv *paymentgateway.InvoiceObject, sub *billing.TenantSubscription, status billing.PaymentStatus, description string) error {
	amount := inv.AmountPaid
	if status == billing.PaymentFailed {
		amount = inv.AmountDue
	}
	payment := billing.NewPayment(sub, amount, status, description)
	payment.GatewayInvoiceID = inv.ID
	payment.GatewayPaymentID = inv.PaymentIntentID
	if inv.Currency != "" {
		payment.Currency = strings.ToUpper(inv.Currency)
	}
	if err := uc.paymentRepo.Record(ctx, payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

func invoiceLabel(inv *paymentgateway.InvoiceObject) string {
	if inv.Number != "" {
		return inv.Number
	}
	return inv.ID
}

func (uc *HandleWebhookUseCase) handleInvoicePaid(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	inv := event.Invoice
	if inv == nil {
		return errMissingObject
	}
	sub, err := uc.findSubscription(ctx, "", inv.CustomerID)
	if err != nil || sub == nil {
		return err
	}

	if err := uc.recordInvoice(ctx, inv, sub, billing.PaymentSucceeded, "Invoice "+invoiceLabel(inv)); err != nil {
		return err
	}
	if sub.Status() == billing.StatusPastDue {
		sub.SetStatus(billing.StatusActive)
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			return fmt.Errorf("failed to reactivate subscription: %w", err)
		}
	}

	uc.logger.Infow("payment succeeded", "tenant_id", sub.TenantID(), "amount", inv.AmountPaid.String())
	return nil
}

func (uc *HandleWebhookUseCase) handleInvoiceFailed(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	inv := event.Invoice
	if inv == nil {
		return errMissingObject
	}
	sub, err := uc.findSubscription(ctx, "", inv.CustomerID)
	if err != nil || sub == nil {
		return err
	}
	uc.logger.Warnw("payment failed", "tenant_id", sub.TenantID(), "amount", inv.AmountDue.String())

	if err := uc.recordInvoice(ctx, inv, sub, billing.PaymentFailed, "Failed: Invoice "+invoiceLabel(inv)); err != nil {
		return err
	}

	if inv.SubscriptionID != "" {
		target := sub
		if inv.SubscriptionID != sub.GatewaySubscriptionID() {
			if target, err = uc.findSubscription(ctx, inv.SubscriptionID, ""); err != nil {
				return err
			}
		}
		if target != nil {
			target.SetStatus(billing.StatusPastDue)
			if err := uc.subscriptionRepo.Update(ctx, target); err != nil {
				return fmt.Errorf("failed to mark subscription past due: %w", err)
			}
		}
	}

	uc.notifyPaymentFailed(ctx, sub.TenantID(), inv)
	return nil
}

// notifyPaymentFailed mails the tenant owner. Mail problems are logged only.
func (uc *HandleWebhookUseCase) notifyPaymentFailed(ctx context.Context, tenantID uint, inv *paymentgateway.InvoiceObject) {
	if uc.notifier == nil {
		return
	}
	owner, err := uc.userRepo.GetOwner(ctx, tenantID)
	if err != nil {
		uc.logger.Warnw("no owner to notify of failed payment", "tenant_id", tenantID, "error", err)
		return
	}
	amount := "$" + inv.AmountDue.StringFixed(2)
	if err := uc.notifier.SendPaymentFailed(owner.Email, amount, invoiceLabel(inv)); err != nil {
		uc.logger.Warnw("payment failed email not sent", "tenant_id", tenantID, "error", err)
	}
}

func (uc *HandleWebhookUseCase) handlePaymentMethodAttached(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	pm := event.PaymentMethod
	if pm == nil {
		return errMissingObject
	}
	if pm.Card == nil {
		return nil
	}
	sub, err := uc.findSubscription(ctx, "", pm.CustomerID)
	if err != nil || sub == nil {
		return err
	}

	sub.SetPaymentMethod(*pm.Card)
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	uc.logger.Infow("payment method updated from gateway", "tenant_id", sub.TenantID())
	return nil
}

func (uc *HandleWebhookUseCase) handleCustomerCreated(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	if c := event.Customer; c != nil {
		uc.logger.Infow("customer created", "customer_id", c.ID)
	}
	return nil
}
