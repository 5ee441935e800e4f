package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/config"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// StripeGateway implements paymentgateway.PaymentGateway on the Stripe API.
type StripeGateway struct {
	api      *client.API
	priceIDs map[string]string
	logger   logger.Interface
}

var _ paymentgateway.PaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg config.BillingConfig, log logger.Interface) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}
	return newStripeGateway(client.New(cfg.SecretKey, nil), cfg.PriceIDs, log), nil
}

func newStripeGateway(api *client.API, priceIDs map[string]string, log logger.Interface) *StripeGateway {
	return &StripeGateway{api: api, priceIDs: priceIDs, logger: log}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (*paymentgateway.Result, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.Context = ctx

	cust, err := g.api.Customers.New(params)
	if err != nil {
		return g.failure("create customer", err)
	}
	return &paymentgateway.Result{Success: true, CustomerID: cust.ID}, nil
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID string, card paymentgateway.CardDetails) (*paymentgateway.Result, error) {
	pmParams := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(paymentgateway.NormalizeCardNumber(card.Number)),
			ExpMonth: stripe.Int64(int64(card.ExpMonth)),
			ExpYear:  stripe.Int64(int64(card.ExpYear)),
			CVC:      stripe.String(card.CVC),
		},
	}
	pmParams.Context = ctx
	pm, err := g.api.PaymentMethods.New(pmParams)
	if err != nil {
		return g.failure("create payment method", err)
	}

	attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	attach.Context = ctx
	if _, err := g.api.PaymentMethods.Attach(pm.ID, attach); err != nil {
		return g.failure("attach payment method", err)
	}

	update := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{DefaultPaymentMethod: stripe.String(pm.ID)},
	}
	update.Context = ctx
	if _, err := g.api.Customers.Update(customerID, update); err != nil {
		return g.failure("set default payment method", err)
	}

	return &paymentgateway.Result{
		Success:         true,
		CustomerID:      customerID,
		PaymentMethodID: pm.ID,
		Card:            cardFromStripe(pm.Card),
	}, nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID string, tier billing.Tier, cycle billing.BillingCycle) (*paymentgateway.Result, error) {
	price, ok := g.priceIDs[paymentgateway.LookupKey(tier, cycle)]
	if !ok {
		return &paymentgateway.Result{ErrorMessage: fmt.Sprintf("No price configured for %s %s", tier, cycle)}, nil
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items:    []*stripe.SubscriptionItemsParams{{Price: stripe.String(price)}},
	}
	params.Context = ctx
	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		return g.failure("create subscription", err)
	}
	return subscriptionResult(sub), nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*paymentgateway.Result, error) {
	var (
		sub *stripe.Subscription
		err error
	)
	if atPeriodEnd {
		params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
		params.Context = ctx
		sub, err = g.api.Subscriptions.Update(subscriptionID, params)
	} else {
		params := &stripe.SubscriptionCancelParams{}
		params.Context = ctx
		sub, err = g.api.Subscriptions.Cancel(subscriptionID, params)
	}
	if err != nil {
		return g.failure("cancel subscription", err)
	}
	return subscriptionResult(sub), nil
}

func (g *StripeGateway) UpdateSubscription(ctx context.Context, subscriptionID string, tier billing.Tier, cycle billing.BillingCycle) (*paymentgateway.Result, error) {
	price, ok := g.priceIDs[paymentgateway.LookupKey(tier, cycle)]
	if !ok {
		return &paymentgateway.Result{ErrorMessage: fmt.Sprintf("No price configured for %s %s", tier, cycle)}, nil
	}

	getParams := &stripe.SubscriptionParams{}
	getParams.Context = ctx
	current, err := g.api.Subscriptions.Get(subscriptionID, getParams)
	if err != nil {
		return g.failure("get subscription", err)
	}
	if current.Items == nil || len(current.Items.Data) == 0 {
		return &paymentgateway.Result{ErrorMessage: "Subscription has no items"}, nil
	}

	params := &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{{
			ID:    stripe.String(current.Items.Data[0].ID),
			Price: stripe.String(price),
		}},
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.Context = ctx
	sub, err := g.api.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return g.failure("update subscription", err)
	}
	return subscriptionResult(sub), nil
}

func (g *StripeGateway) ChargeOnce(ctx context.Context, customerID string, amount decimal.Decimal, description string) (*paymentgateway.Result, error) {
	custParams := &stripe.CustomerParams{}
	custParams.Context = ctx
	cust, err := g.api.Customers.Get(customerID, custParams)
	if err != nil {
		return g.failure("get customer", err)
	}
	if cust.InvoiceSettings == nil || cust.InvoiceSettings.DefaultPaymentMethod == nil {
		return &paymentgateway.Result{ErrorMessage: "No payment method on file"}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount.Shift(2).Round(0).IntPart()),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		Customer:      stripe.String(customerID),
		PaymentMethod: stripe.String(cust.InvoiceSettings.DefaultPaymentMethod.ID),
		Description:   stripe.String(description),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return g.failure("charge customer", err)
	}
	return &paymentgateway.Result{Success: true, CustomerID: customerID, PaymentID: pi.ID, Status: string(pi.Status)}, nil
}

// failure turns card and missing-object errors into unsuccessful results.
func (g *StripeGateway) failure(op string, err error) (*paymentgateway.Result, error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard || stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return &paymentgateway.Result{ErrorMessage: stripeErr.Msg}, nil
		}
	}
	g.logger.Errorw("stripe request failed", "operation", op, "error", err)
	return nil, fmt.Errorf("failed to %s: %w", op, err)
}

func subscriptionResult(sub *stripe.Subscription) *paymentgateway.Result {
	r := &paymentgateway.Result{
		Success:        true,
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		PeriodStart:    unixTime(sub.CurrentPeriodStart),
		PeriodEnd:      unixTime(sub.CurrentPeriodEnd),
	}
	if sub.Customer != nil {
		r.CustomerID = sub.Customer.ID
	}
	return r
}

func cardFromStripe(card *stripe.PaymentMethodCard) *billing.PaymentMethod {
	if card == nil {
		return nil
	}
	return &billing.PaymentMethod{
		Last4:    card.Last4,
		Brand:    string(card.Brand),
		ExpMonth: int(card.ExpMonth),
		ExpYear:  int(card.ExpYear),
	}
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
