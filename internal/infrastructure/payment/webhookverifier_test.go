package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/shared/config"
)

func sign(t *testing.T, payload, secret string) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

const subscriptionUpdated = `{
  "id": "evt_1",
  "object": "event",
  "type": "customer.subscription.updated",
  "data": {"object": {
    "id": "sub_123",
    "object": "subscription",
    "customer": "cus_123",
    "status": "unpaid",
    "current_period_start": 1700000000,
    "current_period_end": 1702592000,
    "items": {"object": "list", "data": [{"id": "si_1", "object": "subscription_item", "price": {"id": "price_1", "object": "price", "lookup_key": "pro_annual"}}]}
  }}
}`

func TestWebhookVerifier_Configured(t *testing.T) {
	assert.False(t, NewWebhookVerifier(config.WebhookSecretsConfig{}).Configured())
	assert.True(t, NewWebhookVerifier(config.WebhookSecretsConfig{Thin: "whsec_thin"}).Configured())
}

func TestWebhookVerifier_Signatures(t *testing.T) {
	v := NewWebhookVerifier(config.WebhookSecretsConfig{Snapshot: "whsec_snap", Thin: "whsec_thin"})

	_, err := v.Verify([]byte(subscriptionUpdated), "")
	assert.ErrorIs(t, err, paymentgateway.ErrMissingSignature)

	_, err = v.Verify([]byte(subscriptionUpdated), sign(t, subscriptionUpdated, "whsec_other"))
	assert.ErrorIs(t, err, paymentgateway.ErrInvalidSignature)

	_, err = v.Verify([]byte(subscriptionUpdated), "garbage")
	assert.ErrorIs(t, err, paymentgateway.ErrInvalidSignature)

	for _, secret := range []string{"whsec_snap", "whsec_thin"} {
		event, err := v.Verify([]byte(subscriptionUpdated), sign(t, subscriptionUpdated, secret))
		require.NoError(t, err, secret)
		assert.Equal(t, paymentgateway.EventSubscriptionUpdated, event.Type)
	}
}

func TestWebhookVerifier_DecodesSubscription(t *testing.T) {
	v := NewWebhookVerifier(config.WebhookSecretsConfig{Snapshot: "whsec_snap"})

	event, err := v.Verify([]byte(subscriptionUpdated), sign(t, subscriptionUpdated, "whsec_snap"))
	require.NoError(t, err)
	require.NotNil(t, event.Subscription)

	sub := event.Subscription
	assert.Equal(t, "sub_123", sub.ID)
	assert.Equal(t, "cus_123", sub.CustomerID)
	assert.Equal(t, "unpaid", sub.Status)
	assert.Equal(t, "pro_annual", sub.LookupKey)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), sub.CurrentPeriodStart)
	assert.Equal(t, time.Unix(1702592000, 0).UTC(), sub.CurrentPeriodEnd)
}

func TestWebhookVerifier_DecodesInvoiceAndCheckout(t *testing.T) {
	v := NewWebhookVerifier(config.WebhookSecretsConfig{Snapshot: "whsec_snap"})

	invoice := `{"id":"evt_2","object":"event","type":"invoice.payment_failed","data":{"object":{
	  "id":"in_1","object":"invoice","number":"INV-7","customer":"cus_9","subscription":"sub_9",
	  "payment_intent":"pi_9","amount_paid":0,"amount_due":12900,"currency":"usd"}}}`
	event, err := v.Verify([]byte(invoice), sign(t, invoice, "whsec_snap"))
	require.NoError(t, err)
	require.NotNil(t, event.Invoice)
	assert.Equal(t, "cus_9", event.Invoice.CustomerID)
	assert.Equal(t, "sub_9", event.Invoice.SubscriptionID)
	assert.Equal(t, "pi_9", event.Invoice.PaymentIntentID)
	assert.Equal(t, "129", event.Invoice.AmountDue.String())

	checkout := `{"id":"evt_3","object":"event","type":"checkout.session.completed","data":{"object":{
	  "id":"cs_1","object":"checkout.session","customer":"cus_1","subscription":"sub_1",
	  "customer_details":{"email":"Owner@Acme.io"}}}}`
	event, err = v.Verify([]byte(checkout), sign(t, checkout, "whsec_snap"))
	require.NoError(t, err)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "Owner@Acme.io", event.Checkout.Email)
	assert.Equal(t, "cus_1", event.Checkout.CustomerID)
	assert.Equal(t, "sub_1", event.Checkout.SubscriptionID)

	unknown := `{"id":"evt_4","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge"}}}`
	event, err = v.Verify([]byte(unknown), sign(t, unknown, "whsec_snap"))
	require.NoError(t, err)
	assert.Equal(t, "charge.refunded", event.Type)
	assert.Nil(t, event.Invoice)
	assert.Nil(t, event.Subscription)
}
