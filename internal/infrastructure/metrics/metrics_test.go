package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("hireloop")

	m.ObserveRequest(http.MethodGet, "/analytics/summary", 200, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/analytics/summary", 200, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)
	m.ObserveLLMCall("ok", time.Second)
	m.ObserveLLMCall("error", 2*time.Second)
	m.RecordWebhook("invoice.payment_failed", "success")
	m.RecordResumeScreened("accepted")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/analytics/summary", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMCallsTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookEvents.WithLabelValues("invoice.payment_failed", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResumesScreened.WithLabelValues("accepted")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("hireloop")
	m.ObserveLLMCall("ok", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hireloop_llm_calls_total{outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New("hireloop")
		_ = New("hireloop")
	})
}
