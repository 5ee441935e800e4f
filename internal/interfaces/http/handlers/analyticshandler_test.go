package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/application/analytics/usecases"
	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/analytics"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers/testutil"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/errors"
)

type mockSummariesUC struct {
	result []analytics.JobSummary
	err    error
	slug   string
}

func (m *mockSummariesUC) Execute(ctx context.Context, tenantSlug string) ([]analytics.JobSummary, error) {
	m.slug = tenantSlug
	return m.result, m.err
}

type mockDetailUC struct {
	result *analytics.JobDetail
	err    error
	query  usecases.GetJobDetailQuery
}

func (m *mockDetailUC) Execute(ctx context.Context, query usecases.GetJobDetailQuery) (*analytics.JobDetail, error) {
	m.query = query
	return m.result, m.err
}

type mockExportUC struct {
	result *usecases.ExportJobDetailResult
	err    error
	query  usecases.GetJobDetailQuery
}

func (m *mockExportUC) Execute(ctx context.Context, query usecases.GetJobDetailQuery) (*usecases.ExportJobDetailResult, error) {
	m.query = query
	return m.result, m.err
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	mockUC := &mockSummariesUC{result: []analytics.JobSummary{}}
	handler := NewAnalyticsHandler(mockUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/analytics/summary", nil)
	testutil.SetQueryParams(c, map[string]string{"tenant": "acme"})
	handler.GetSummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", mockUC.slug)

	mockUC.err = errors.NewNotFoundError("tenant not found", "ghost")
	c, w = testutil.NewTestContext(http.MethodGet, "/analytics/summary", nil)
	handler.GetSummary(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsHandler_GetJobDetail(t *testing.T) {
	mockUC := &mockDetailUC{result: &analytics.JobDetail{}}
	handler := NewAnalyticsHandler(nil, mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/analytics/job/DEV-1", nil)
	testutil.SetQueryParams(c, map[string]string{"tenant": "acme"})
	testutil.SetURLParam(c, "code", "DEV-1")
	handler.GetJobDetail(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.GetJobDetailQuery{TenantSlug: "acme", Code: "DEV-1"}, mockUC.query)
}

func TestAnalyticsHandler_Export(t *testing.T) {
	mockUC := &mockExportUC{result: &usecases.ExportJobDetailResult{Filename: "DEV-1-analytics.xlsx", Content: []byte("PK")}}
	handler := NewAnalyticsHandler(nil, nil, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/jobs/DEV-1/analytics/export", nil)
	testutil.SetAuthContext(c, 1, 2, authorization.RoleRecruiter)
	testutil.SetURLParam(c, "code", "DEV-1")
	handler.ExportOwnJobDetail(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", mockUC.query.TenantSlug)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "DEV-1-analytics.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}

func TestAnalyticsHandler_Export_FeatureDenied(t *testing.T) {
	sub, err := billing.NewTenantSubscription(2, billing.TierPro, billing.CycleMonthly, time.Now())
	require.NoError(t, err)
	check := billing.NewGate(billing.DefaultCatalog()).CheckFeature(sub, billing.FeatureFullAnalyticsEngine)

	handler := NewAnalyticsHandler(nil, nil, &mockExportUC{err: quota.FeatureDenied(check)}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/analytics/job/DEV-1/export", nil)
	testutil.SetQueryParams(c, map[string]string{"tenant": "acme"})
	testutil.SetURLParam(c, "code", "DEV-1")
	handler.ExportJobDetail(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), `"feature":"full_analytics_engine"`)
}
