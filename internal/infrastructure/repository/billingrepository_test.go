package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/db"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

func TestSubscriptionRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSubscriptionRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	sub, err := billing.NewTenantSubscription(7, billing.TierStarter, billing.CycleMonthly, start)
	require.NoError(t, err)
	sub.SetGatewayIDs("cus_123", "sub_123")
	sub.SetPaymentMethod(billing.PaymentMethod{Last4: "4242", Brand: "visa", ExpMonth: 12, ExpYear: 2030})
	require.NoError(t, repo.Create(ctx, sub))
	assert.NotZero(t, sub.ID())

	t.Run("get by tenant", func(t *testing.T) {
		found, err := repo.GetByTenantID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, billing.TierStarter, found.Tier())
		assert.Equal(t, billing.StatusActive, found.Status())
		require.NotNil(t, found.PaymentMethod())
		assert.Equal(t, "4242", found.PaymentMethod().Last4)
		assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), found.PeriodEnd().UTC())
	})

	t.Run("get by gateway ids", func(t *testing.T) {
		found, err := repo.GetByGatewaySubscriptionID(ctx, "sub_123")
		require.NoError(t, err)
		assert.Equal(t, sub.ID(), found.ID())

		found, err = repo.GetByGatewayCustomerID(ctx, "cus_123")
		require.NoError(t, err)
		assert.Equal(t, sub.ID(), found.ID())
	})

	t.Run("update persists plan and seats", func(t *testing.T) {
		require.NoError(t, sub.ChangePlan(billing.TierPro, billing.CycleYearly))
		require.NoError(t, sub.AddSeats(3))
		require.NoError(t, repo.Update(ctx, sub))

		found, err := repo.GetByTenantID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, billing.TierPro, found.Tier())
		assert.Equal(t, billing.CycleYearly, found.Cycle())
		assert.Equal(t, 3, found.ExtraSeats())
	})

	t.Run("missing tenant reports not found", func(t *testing.T) {
		_, err := repo.GetByTenantID(ctx, 99)
		assert.ErrorIs(t, err, billing.ErrSubscriptionNotFound)
	})

	t.Run("grandfathered subscription is never stored", func(t *testing.T) {
		err := repo.Create(ctx, billing.Grandfathered(8, start))
		assert.Error(t, err)
	})

	t.Run("subscription without card", func(t *testing.T) {
		plain, err := billing.NewTenantSubscription(9, billing.TierFree, billing.CycleMonthly, start)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, plain))

		found, err := repo.GetByTenantID(ctx, 9)
		require.NoError(t, err)
		assert.Nil(t, found.PaymentMethod())
		assert.Empty(t, found.GatewaySubscriptionID())
	})
}

func TestUsageRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUsageRepository(gdb)
	ctx := context.Background()

	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	usage := &billing.TenantUsage{TenantID: 3, PeriodStart: start, PeriodEnd: start.AddDate(0, 1, 0)}
	require.NoError(t, repo.Create(ctx, usage))

	current, err := repo.GetCurrent(ctx, 3, start.Add(24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, usage.ID, current.ID)

	outside, err := repo.GetCurrent(ctx, 3, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Nil(t, outside, "period end is exclusive")

	require.NoError(t, repo.IncrementResumes(ctx, usage.ID))
	require.NoError(t, repo.IncrementResumes(ctx, usage.ID))

	current, err = repo.GetCurrent(ctx, 3, start)
	require.NoError(t, err)
	assert.Equal(t, 2, current.ResumesReviewed)

	assert.Error(t, repo.IncrementResumes(ctx, 404))
}

func TestPendingSignupRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPendingSignupRepository(gdb, logger.NewNopLogger())
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := billing.NewPendingSignup("Jane@Acme.io", billing.TierStarter, billing.CycleMonthly, "Acme", "Jane", "h1", now)
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotZero(t, first.ID)

	t.Run("resubmission overwrites the same row", func(t *testing.T) {
		second := billing.NewPendingSignup("jane@acme.io", billing.TierPro, billing.CycleYearly, "Acme Corp", "Jane D", "h2", now.Add(time.Hour))
		require.NoError(t, repo.Upsert(ctx, second))
		assert.Equal(t, first.ID, second.ID)

		stored, err := repo.GetByEmail(ctx, "jane@acme.io")
		require.NoError(t, err)
		assert.Equal(t, billing.TierPro, stored.Tier)
		assert.Equal(t, "Acme Corp", stored.CompanyName)
		assert.Equal(t, "h2", stored.PasswordHash)
	})

	t.Run("lock then mark processed", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			locked, err := repo.LockUnprocessedByEmail(txCtx, "jane@acme.io")
			if err != nil {
				return err
			}
			return repo.MarkProcessed(txCtx, locked.ID)
		})
		require.NoError(t, err)

		err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			_, err := repo.LockUnprocessedByEmail(txCtx, "jane@acme.io")
			return err
		})
		assert.ErrorIs(t, err, billing.ErrPendingSignupNotFound)
	})

	t.Run("delete expired", func(t *testing.T) {
		deleted, err := repo.DeleteExpired(ctx, now.Add(billing.PendingSignupTTL-time.Minute))
		require.NoError(t, err)
		assert.Zero(t, deleted)

		deleted, err = repo.DeleteExpired(ctx, now.Add(48*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = repo.GetByEmail(ctx, "jane@acme.io")
		assert.ErrorIs(t, err, billing.ErrPendingSignupNotFound)
	})
}

func TestPaymentHistoryRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPaymentHistoryRepository(gdb)
	ctx := context.Background()

	sub, err := billing.NewTenantSubscription(5, billing.TierStarter, billing.CycleMonthly, time.Now().UTC())
	require.NoError(t, err)

	pending := billing.NewPayment(sub, decimal.RequireFromString("19.99"), billing.PaymentPending, "Starter monthly")
	pending.GatewayInvoiceID = "in_1"
	pending.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, pending))

	paid := billing.NewPayment(sub, decimal.RequireFromString("19.99"), billing.PaymentSucceeded, "Starter monthly")
	paid.GatewayInvoiceID = "in_1"
	require.NoError(t, repo.Record(ctx, paid))
	assert.Equal(t, pending.ID, paid.ID, "same invoice updates the existing row")

	seat := billing.NewPayment(sub, decimal.NewFromInt(20), billing.PaymentSucceeded, "1 extra seat")
	seat.CreatedAt = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, seat))

	history, err := repo.ListByTenant(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1 extra seat", history[0].Description)
	assert.Equal(t, billing.PaymentSucceeded, history[1].Status)
	assert.True(t, history[1].Amount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, billing.CurrencyUSD, history[1].Currency)

	limited, err := repo.ListByTenant(ctx, 5, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
