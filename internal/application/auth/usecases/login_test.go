package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/infrastructure/repository/repotest"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(userID, tenantID uint, tenantSlug string, role authorization.UserRole) (*AccessToken, error) {
	args := m.Called(userID, tenantID, tenantSlug, role)
	if token := args.Get(0); token != nil {
		return token.(*AccessToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestLoginUseCase(t *testing.T) {
	repos := repotest.New(t)
	hasher := auth.NewBcryptPasswordHasher(4)
	ctx := context.Background()

	tenant := &recruiting.Tenant{Slug: "acme", DisplayName: "Acme"}
	require.NoError(t, repos.Tenants.Create(ctx, tenant))
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	user := &recruiting.User{TenantID: tenant.ID, Email: "jane@acme.test", FullName: "Jane", PasswordHash: hash, Role: authorization.RoleOwner}
	require.NoError(t, repos.Users.Create(ctx, user))

	issuer := new(mockTokenIssuer)
	issuer.On("Issue", user.ID, tenant.ID, "acme", authorization.RoleOwner).
		Return(&AccessToken{Token: "tok", ExpiresIn: 3600}, nil).Once()

	uc := NewLoginUseCase(repos.Users, repos.Tenants, hasher, issuer, logger.NewNopLogger())

	t.Run("success with mixed-case email", func(t *testing.T) {
		result, err := uc.Execute(ctx, LoginCommand{Email: " Jane@Acme.test ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "tok", result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "acme", result.TenantSlug)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Execute(ctx, LoginCommand{Email: "jane@acme.test", Password: "nope"})
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Execute(ctx, LoginCommand{Email: "bob@acme.test", Password: "s3cret-pass"})
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := uc.Execute(ctx, LoginCommand{Email: "jane@acme.test"})
		assert.True(t, apperrors.IsValidationError(err))
	})

	issuer.AssertExpectations(t)
}
