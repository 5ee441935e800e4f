// Package repotest opens migrated in-memory SQLite databases for integration tests.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/infrastructure/repository"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// Repositories bundles every repository over one database.
type Repositories struct {
	DB               *gorm.DB
	Tenants          *repository.TenantRepository
	Users            *repository.UserRepository
	Jobs             *repository.JobRepository
	Candidates       *repository.CandidateRepository
	Subscriptions    *repository.SubscriptionRepository
	Usage            *repository.UsageRepository
	PendingSignups   *repository.PendingSignupRepository
	PaymentHistories *repository.PaymentHistoryRepository
}

func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func New(t testing.TB) *Repositories {
	t.Helper()

	db := NewDB(t)
	log := logger.NewNopLogger()
	return &Repositories{
		DB:               db,
		Tenants:          repository.NewTenantRepository(db),
		Users:            repository.NewUserRepository(db, log),
		Jobs:             repository.NewJobRepository(db),
		Candidates:       repository.NewCandidateRepository(db),
		Subscriptions:    repository.NewSubscriptionRepository(db, log),
		Usage:            repository.NewUsageRepository(db),
		PendingSignups:   repository.NewPendingSignupRepository(db, log),
		PaymentHistories: repository.NewPaymentHistoryRepository(db),
	}
}

// SeedTenant stores a tenant and its owner account.
func (r *Repositories) SeedTenant(t testing.TB, slug string) (*recruiting.Tenant, *recruiting.User) {
	t.Helper()
	ctx := context.Background()

	tenant := &recruiting.Tenant{Slug: slug, DisplayName: slug}
	require.NoError(t, r.Tenants.Create(ctx, tenant))

	owner := &recruiting.User{
		TenantID:     tenant.ID,
		Email:        "owner@" + slug + ".test",
		FullName:     "Owner " + slug,
		PasswordHash: "x",
		Role:         authorization.RoleOwner,
	}
	require.NoError(t, r.Users.Create(ctx, owner))
	return tenant, owner
}

// SeedJob stores an open job posted on the given date.
func (r *Repositories) SeedJob(t testing.TB, tenant *recruiting.Tenant, code, title string, posted *time.Time) *recruiting.JobDescription {
	t.Helper()

	job := &recruiting.JobDescription{
		TenantID:  tenant.ID,
		Code:      code,
		Slug:      recruiting.JobSlug(tenant.Slug, code),
		Title:     title,
		Body:      "We are hiring.",
		HTML:      "<p>We are hiring.</p>",
		Status:    recruiting.JobStatusOpen,
		StartDate: posted,
	}
	require.NoError(t, r.Jobs.Create(context.Background(), job))
	return job
}
