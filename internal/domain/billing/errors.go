package billing

import "errors"

const (
	MinSeatPurchase = 1
	MaxSeatPurchase = 10
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrPendingSignupNotFound   = errors.New("pending signup not found")
	ErrGrandfatheredPlanChange = errors.New("grandfathered access cannot be changed")
	ErrGrandfatheredSeats      = errors.New("grandfathered access has unlimited seats")
	ErrGrandfatheredCancel     = errors.New("grandfathered accounts cannot be canceled")
	ErrAlreadyCanceled         = errors.New("subscription is already canceled")
	ErrInvalidTier             = errors.New("invalid plan tier")
	ErrInvalidCycle            = errors.New("invalid billing cycle")
	ErrInvalidSeatCount        = errors.New("seat count must be between 1 and 10")
)
