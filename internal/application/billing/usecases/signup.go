package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

const minPasswordLength = 6

type SignupCommand struct {
	Email       string
	Password    string
	CompanyName string
	FullName    string
	Tier        string
	Cycle       string
}

type SignupResult struct {
	Email       string               `json:"email"`
	Tier        billing.Tier         `json:"plan_tier"`
	Cycle       billing.BillingCycle `json:"billing_cycle"`
	PaymentLink string               `json:"payment_link"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

// SignupUseCase stores the signup form as a pending signup and hands back the hosted
// payment page. The account is created by the checkout webhook.
type SignupUseCase struct {
	userRepo    recruiting.UserRepository
	pendingRepo billing.PendingSignupRepository
	hasher      PasswordHasher
	links       map[string]string
	logger      logger.Interface
	now         func() time.Time
}

func NewSignupUseCase(
	userRepo recruiting.UserRepository,
	pendingRepo billing.PendingSignupRepository,
	hasher PasswordHasher,
	links map[string]string,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:    userRepo,
		pendingRepo: pendingRepo,
		hasher:      hasher,
		links:       links,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	email := billing.NormalizeEmail(cmd.Email)
	tier, cycle, err := validateSignup(email, cmd)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("an account with this email already exists, please log in")
	} else if !errors.Is(err, recruiting.ErrUserNotFound) {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	link := uc.links[paymentgateway.LookupKey(tier, cycle)]
	if link == "" {
		uc.logger.Warnw("payment link not configured", "plan_tier", tier, "billing_cycle", cycle)
		return nil, apperrors.NewUnavailableError("payment link not configured for this plan, please contact support")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	signup := billing.NewPendingSignup(email, tier, cycle, cmd.CompanyName, cmd.FullName, hash, uc.now())
	if err := uc.pendingRepo.Upsert(ctx, signup); err != nil {
		uc.logger.Errorw("failed to store pending signup", "error", err)
		return nil, fmt.Errorf("failed to store pending signup: %w", err)
	}

	uc.logger.Infow("pending signup stored",
		"plan_tier", tier,
		"billing_cycle", cycle,
		"expires_at", signup.ExpiresAt,
	)

	return &SignupResult{
		Email:       email,
		Tier:        tier,
		Cycle:       cycle,
		PaymentLink: link + "?prefilled_email=" + url.QueryEscape(email),
		ExpiresAt:   signup.ExpiresAt,
	}, nil
}

func validateSignup(email string, cmd SignupCommand) (billing.Tier, billing.BillingCycle, error) {
	var problems []string
	switch {
	case email == "":
		problems = append(problems, "email is required")
	case !strings.Contains(email, "@"):
		problems = append(problems, "please enter a valid email address")
	}
	if len(cmd.Password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if strings.TrimSpace(cmd.CompanyName) == "" {
		problems = append(problems, "company name is required")
	}

	tier := billing.TierFree
	if cmd.Tier != "" {
		tier = billing.ParseTier(cmd.Tier)
	}
	if !tier.IsValid() {
		problems = append(problems, "unknown plan tier")
	}
	cycle := billing.CycleMonthly
	if cmd.Cycle != "" {
		cycle = billing.BillingCycle(strings.ToLower(strings.TrimSpace(cmd.Cycle)))
	}
	if !cycle.IsValid() {
		problems = append(problems, "unknown billing cycle")
	}

	if len(problems) > 0 {
		return "", "", apperrors.NewValidationError(problems[0], problems...)
	}
	return tier, cycle, nil
}
