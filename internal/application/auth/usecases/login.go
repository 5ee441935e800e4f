package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type AccessToken struct {
	Token     string
	ExpiresIn int64
}

type TokenIssuer interface {
	Issue(userID, tenantID uint, tenantSlug string, role authorization.UserRole) (*AccessToken, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uint                   `json:"user_id"`
	FullName    string                 `json:"full_name"`
	Role        authorization.UserRole `json:"role"`
	TenantSlug  string                 `json:"tenant"`
	AccessToken string                 `json:"access_token"`
	TokenType   string                 `json:"token_type"`
	ExpiresIn   int64                  `json:"expires_in"`
}

type LoginUseCase struct {
	userRepo   recruiting.UserRepository
	tenantRepo recruiting.TenantRepository
	hasher     PasswordVerifier
	tokens     TokenIssuer
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo recruiting.UserRepository,
	tenantRepo recruiting.TenantRepository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := billing.NormalizeEmail(cmd.Email)
	if email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiting.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, user.PasswordHash); err != nil {
		uc.logger.Infow("login rejected", "user_id", user.ID)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	token, err := uc.tokens.Issue(user.ID, tenant.ID, tenant.Slug, user.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", user.ID, "tenant", tenant.Slug)
	return &LoginResult{
		UserID:      user.ID,
		FullName:    user.FullName,
		Role:        user.Role,
		TenantSlug:  tenant.Slug,
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
