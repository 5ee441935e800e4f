package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/shared/config"
)

// WebhookVerifier checks the Stripe-Signature header against the snapshot secret and
// then the thin-event secret.
type WebhookVerifier struct {
	secrets []string
}

var _ paymentgateway.WebhookVerifier = (*WebhookVerifier)(nil)

func NewWebhookVerifier(cfg config.WebhookSecretsConfig) *WebhookVerifier {
	v := &WebhookVerifier{}
	for _, s := range []string{cfg.Snapshot, cfg.Thin} {
		if s != "" {
			v.secrets = append(v.secrets, s)
		}
	}
	return v
}

func (v *WebhookVerifier) Configured() bool {
	return len(v.secrets) > 0
}

func (v *WebhookVerifier) Verify(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if signature == "" {
		return nil, paymentgateway.ErrMissingSignature
	}

	var (
		event   stripe.Event
		lastErr error
	)
	verified := false
	for _, secret := range v.secrets {
		e, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err == nil {
			event = e
			verified = true
			break
		}
		lastErr = err
	}
	if !verified {
		if isSignatureError(lastErr) {
			return nil, paymentgateway.ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, lastErr)
	}

	return decodeEvent(event)
}

func isSignatureError(err error) bool {
	return err == nil ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld)
}

func decodeEvent(e stripe.Event) (*paymentgateway.WebhookEvent, error) {
	out := &paymentgateway.WebhookEvent{ID: e.ID, Type: string(e.Type)}
	if e.Data == nil {
		return out, nil
	}
	raw := e.Data.Raw

	switch {
	case out.Type == paymentgateway.EventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, err)
		}
		obj := &paymentgateway.CheckoutObject{ID: s.ID, Email: s.CustomerEmail}
		if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
			obj.Email = s.CustomerDetails.Email
		}
		if s.Customer != nil {
			obj.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			obj.SubscriptionID = s.Subscription.ID
		}
		out.Checkout = obj

	case strings.HasPrefix(out.Type, "customer.subscription."):
		var s stripe.Subscription
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, err)
		}
		obj := &paymentgateway.SubscriptionObject{
			ID:                 s.ID,
			Status:             string(s.Status),
			CurrentPeriodStart: unixTime(s.CurrentPeriodStart),
			CurrentPeriodEnd:   unixTime(s.CurrentPeriodEnd),
		}
		if s.Customer != nil {
			obj.CustomerID = s.Customer.ID
		}
		if s.Items != nil && len(s.Items.Data) > 0 && s.Items.Data[0].Price != nil {
			obj.LookupKey = s.Items.Data[0].Price.LookupKey
		}
		out.Subscription = obj

	case strings.HasPrefix(out.Type, "invoice."):
		var inv stripe.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, err)
		}
		obj := &paymentgateway.InvoiceObject{
			ID:         inv.ID,
			Number:     inv.Number,
			AmountPaid: decimal.New(inv.AmountPaid, -2),
			AmountDue:  decimal.New(inv.AmountDue, -2),
			Currency:   string(inv.Currency),
		}
		if inv.Customer != nil {
			obj.CustomerID = inv.Customer.ID
		}
		if inv.Subscription != nil {
			obj.SubscriptionID = inv.Subscription.ID
		}
		if inv.PaymentIntent != nil {
			obj.PaymentIntentID = inv.PaymentIntent.ID
		}
		out.Invoice = obj

	case strings.HasPrefix(out.Type, "payment_method."):
		var pm stripe.PaymentMethod
		if err := json.Unmarshal(raw, &pm); err != nil {
			return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, err)
		}
		obj := &paymentgateway.PaymentMethodObject{ID: pm.ID, Card: cardFromStripe(pm.Card)}
		if pm.Customer != nil {
			obj.CustomerID = pm.Customer.ID
		}
		out.PaymentMethod = obj

	case out.Type == paymentgateway.EventCustomerCreated:
		var c stripe.Customer
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidPayload, err)
		}
		out.Customer = &paymentgateway.CustomerObject{ID: c.ID, Email: c.Email}
	}

	return out, nil
}
