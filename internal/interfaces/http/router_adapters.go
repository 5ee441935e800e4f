package http

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	authUsecases "github.com/hireloop/hireloop/internal/application/auth/usecases"
	"github.com/hireloop/hireloop/internal/domain/screening"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/errors"
)

// tokenIssuerAdapter adapts auth.JWTService to authUsecases.TokenIssuer.
type tokenIssuerAdapter struct {
	*auth.JWTService
}

func (a *tokenIssuerAdapter) Issue(userID, tenantID uint, tenantSlug string, role authorization.UserRole) (*authUsecases.AccessToken, error) {
	token, err := a.JWTService.Generate(userID, tenantID, tenantSlug, role)
	if err != nil {
		return nil, err
	}
	return &authUsecases.AccessToken{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
	}, nil
}

// gormPinger reports database reachability for the health endpoint.
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// unavailableGenerator stands in when no LLM backend is configured.
type unavailableGenerator struct {
	reason string
}

var _ screening.TextGenerator = unavailableGenerator{}

func (g unavailableGenerator) Generate(ctx context.Context, prompt screening.Prompt) (string, error) {
	return "", errors.NewUnavailableError("screening is not configured", g.reason)
}
