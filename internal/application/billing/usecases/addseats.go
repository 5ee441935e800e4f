package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type AddSeatsCommand struct {
	TenantID uint
	Seats    int
}

type AddSeatsResult struct {
	AddedSeats int             `json:"added_seats"`
	ExtraSeats int             `json:"extra_seats"`
	TotalSeats int             `json:"total_seats"`
	Charged    decimal.Decimal `json:"charged"`
	PaymentID  string          `json:"payment_id"`
}

// AddSeatsUseCase charges the card on file for extra seats and raises the seat limit.
type AddSeatsUseCase struct {
	subscriptionRepo billing.SubscriptionRepository
	paymentRepo      billing.PaymentHistoryRepository
	gateway          paymentgateway.PaymentGateway
	catalog          *billing.Catalog
	txManager        TransactionManager
	logger           logger.Interface
}

func NewAddSeatsUseCase(
	subscriptionRepo billing.SubscriptionRepository,
	paymentRepo billing.PaymentHistoryRepository,
	gateway paymentgateway.PaymentGateway,
	catalog *billing.Catalog,
	txManager TransactionManager,
	logger logger.Interface,
) *AddSeatsUseCase {
	return &AddSeatsUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		gateway:          gateway,
		catalog:          catalog,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *AddSeatsUseCase) Execute(ctx context.Context, cmd AddSeatsCommand) (*AddSeatsResult, error) {
	if cmd.Seats < billing.MinSeatPurchase || cmd.Seats > billing.MaxSeatPurchase {
		return nil, apperrors.NewValidationError("please select between 1 and 10 seats")
	}

	sub, err := getStoredSubscription(ctx, uc.subscriptionRepo, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	if sub.IsGrandfathered() {
		return nil, subscriptionError(billing.ErrGrandfatheredSeats)
	}
	if sub.GatewayCustomerID() == "" {
		return nil, apperrors.NewBadRequestError("unable to process payment, please contact support")
	}

	amount := uc.catalog.ExtraSeatPriceMonthly.Mul(decimal.NewFromInt(int64(cmd.Seats)))
	description := fmt.Sprintf("Added %d additional seat(s)", cmd.Seats)

	result, err := uc.gateway.ChargeOnce(ctx, sub.GatewayCustomerID(), amount, description)
	if err != nil {
		uc.logger.Errorw("seat charge failed", "tenant_id", cmd.TenantID, "error", err)
		return nil, apperrors.NewUpstreamError("payment failed, please try again")
	}
	if !result.Success {
		return nil, gatewayError(result, "payment failed, please try again")
	}

	if err := sub.AddSeats(cmd.Seats); err != nil {
		return nil, subscriptionError(err)
	}

	payment := billing.NewPayment(sub, amount, billing.PaymentSucceeded, description)
	payment.ExtraSeats = cmd.Seats
	payment.GatewayPaymentID = result.PaymentID

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return err
		}
		return uc.paymentRepo.Record(txCtx, payment)
	})
	if err != nil {
		// The card was charged; the payment id is logged for reconciliation.
		uc.logger.Errorw("failed to save seat purchase",
			"tenant_id", cmd.TenantID,
			"payment_id", result.PaymentID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to save seat purchase: %w", err)
	}

	uc.logger.Infow("seats added",
		"tenant_id", cmd.TenantID,
		"seats", cmd.Seats,
		"amount", amount.String(),
	)

	return &AddSeatsResult{
		AddedSeats: cmd.Seats,
		ExtraSeats: sub.ExtraSeats(),
		TotalSeats: sub.TotalSeats(uc.catalog),
		Charged:    amount,
		PaymentID:  result.PaymentID,
	}, nil
}
