package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/export"
	"github.com/hireloop/hireloop/internal/infrastructure/repository/repotest"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	repos   *repotest.Repositories
	tenant  *recruiting.Tenant
	summary *GetJobSummariesUseCase
	detail  *GetJobDetailUseCase
	export  *ExportJobDetailUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := repotest.New(t)
	log := logger.NewNopLogger()
	tenant, _ := repos.SeedTenant(t, "acme")

	q := quota.NewService(repos.Subscriptions, repos.Usage, repos.Jobs, repos.Users,
		billing.NewGate(billing.DefaultCatalog()), log)
	detail := NewGetJobDetailUseCase(repos.Tenants, repos.Jobs, repos.Candidates, log)

	return &fixture{
		repos:   repos,
		tenant:  tenant,
		summary: NewGetJobSummariesUseCase(repos.Tenants, repos.Jobs, repos.Candidates, log),
		detail:  detail,
		export:  NewExportJobDetailUseCase(detail, q, export.NewExporter(), log),
	}
}

func (f *fixture) addCandidate(t *testing.T, code, id string, relevancy float64, scores ...float64) {
	t.Helper()
	c := &recruiting.Candidate{
		ID:        id,
		TenantID:  f.tenant.ID,
		JDCode:    code,
		Name:      "Candidate " + id,
		Relevancy: ptr(relevancy),
		Questions: []string{"q1", "q2", "q3", "q4"},
	}
	for _, s := range scores {
		c.AnswerScores = append(c.AnswerScores, ptr(s))
		c.Answers = append(c.Answers, "a detailed answer")
	}
	require.NoError(t, f.repos.Candidates.Create(context.Background(), c))
}

func TestGetJobSummaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Backend Engineer", &older)
	f.repos.SeedJob(t, f.tenant, "ENG-2", "Data Engineer", &newer)

	f.addCandidate(t, "ENG-1", "c0000001", 5, 5, 4, 4, 5)
	f.addCandidate(t, "ENG-1", "c0000002", 2, 3, 3, 3, 3)
	f.addCandidate(t, "ENG-2", "c0000003", 4, 4, 4, 4, 4)

	summaries, err := f.summary.Execute(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "ENG-2", summaries[0].JDCode)
	assert.Equal(t, 1, summaries[0].Applicants)
	assert.Equal(t, 1, summaries[0].DiamondsFound)
	assert.Equal(t, "ENG-1", summaries[1].JDCode)
	assert.Equal(t, 2, summaries[1].Applicants)
	assert.Equal(t, 1, summaries[1].DiamondsFound)
	require.NotNil(t, summaries[1].Posted)
	assert.Equal(t, "2025-01-10", *summaries[1].Posted)
}

func TestGetJobSummaries_TenantErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.summary.Execute(context.Background(), "  ")
	assert.True(t, apperrors.IsValidationError(err))

	_, err = f.summary.Execute(context.Background(), "globex")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetJobDetail(t *testing.T) {
	f := newFixture(t)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Backend Engineer", nil)
	f.addCandidate(t, "ENG-1", "c0000001", 5, 5, 4, 4, 5)
	f.addCandidate(t, "ENG-1", "c0000002", 2, 3, 3, 3, 3)

	detail, err := f.detail.Execute(context.Background(), GetJobDetailQuery{TenantSlug: "acme", Code: "ENG-1"})
	require.NoError(t, err)

	assert.Equal(t, "ENG-1", detail.JD.Code)
	assert.Equal(t, 2, detail.Totals.Applied)
	assert.Equal(t, 1, detail.Totals.DiamondsFound)
	assert.Equal(t, 1, detail.Heatmap.Matrix[4][3])
	assert.Equal(t, 1, detail.Heatmap.Matrix[1][2])

	_, err = f.detail.Execute(context.Background(), GetJobDetailQuery{TenantSlug: "acme", Code: "NOPE"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestExportJobDetail_Grandfathered(t *testing.T) {
	f := newFixture(t)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Backend Engineer", nil)
	f.addCandidate(t, "ENG-1", "c0000001", 5, 5, 4, 4, 5)

	result, err := f.export.Execute(context.Background(), GetJobDetailQuery{TenantSlug: "acme", Code: "ENG-1"})
	require.NoError(t, err)
	assert.Contains(t, result.Filename, "analytics_ENG-1_")
	assert.NotEmpty(t, result.Content)
}

func TestExportJobDetail_RequiresFullAnalytics(t *testing.T) {
	f := newFixture(t)
	f.repos.SeedJob(t, f.tenant, "ENG-1", "Backend Engineer", nil)

	sub, err := billing.NewTenantSubscription(f.tenant.ID, billing.TierPro, billing.CycleMonthly, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, f.repos.Subscriptions.Create(context.Background(), sub))

	_, err = f.export.Execute(context.Background(), GetJobDetailQuery{TenantSlug: "acme", Code: "ENG-1"})
	require.Error(t, err)

	var denied *quota.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, billing.ActionSeePlans, denied.Denial.SuggestedAction)
	assert.Equal(t, apperrors.ErrorTypePaymentRequired, apperrors.GetAppError(err).Type)
}
