package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers/testutil"
	"github.com/hireloop/hireloop/internal/shared/errors"
)

type mockHandleWebhookUC struct {
	result *usecases.HandleWebhookResult
	err    error
	cmd    usecases.HandleWebhookCommand
}

func (m *mockHandleWebhookUC) Execute(ctx context.Context, cmd usecases.HandleWebhookCommand) (*usecases.HandleWebhookResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

func newWebhookContext(payload, signature string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/billing/webhook", bytes.NewBufferString(payload))
	if signature != "" {
		c.Request.Header.Set("Stripe-Signature", signature)
	}
	return c, w
}

func TestWebhookHandler_PassesRawPayloadAndSignature(t *testing.T) {
	mockUC := &mockHandleWebhookUC{result: &usecases.HandleWebhookResult{
		Status: usecases.WebhookStatusSuccess,
		Event:  "checkout.session.completed",
	}}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	c, w := newWebhookContext(`{"id":"evt_1"}`, "t=1,v1=abc")
	handler.HandleWebhook(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":"evt_1"}`, string(mockUC.cmd.Payload))
	assert.Equal(t, "t=1,v1=abc", mockUC.cmd.Signature)
	assert.JSONEq(t, `{"status":"success","event":"checkout.session.completed"}`, w.Body.String())
}

func TestWebhookHandler_HandlerFailureStillAcknowledged(t *testing.T) {
	mockUC := &mockHandleWebhookUC{result: &usecases.HandleWebhookResult{
		Status:  usecases.WebhookStatusError,
		Event:   "invoice.payment_failed",
		Message: "database unavailable",
	}}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	c, w := newWebhookContext(`{}`, "t=1,v1=abc")
	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestWebhookHandler_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no signature", errors.NewBadRequestError("no signature"), http.StatusBadRequest},
		{"invalid signature", errors.NewBadRequestError("invalid signature"), http.StatusBadRequest},
		{"not configured", errors.NewUnavailableError("webhook secret not configured"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWebhookHandler(&mockHandleWebhookUC{err: tt.err}, testutil.NewMockLogger())

			c, w := newWebhookContext(`{}`, "")
			handler.HandleWebhook(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
