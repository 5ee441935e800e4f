package quota

import (
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/errors"
)

// DeniedError is returned when a limit or feature check refuses an operation. Check
// holds the billing.LimitCheck or billing.FeatureCheck that produced it.
type DeniedError struct {
	Denial billing.Denial
	Check  interface{}
}

func (e *DeniedError) Error() string {
	return e.Denial.Reason
}

// AppError is the 402 response carrying the suggested action as details.
func (e *DeniedError) AppError() *errors.AppError {
	return errors.NewPaymentRequiredError(e.Denial.Reason, string(e.Denial.SuggestedAction))
}

func (e *DeniedError) Unwrap() error {
	return e.AppError()
}

// LimitDenied returns a DeniedError when the check is not allowed, otherwise nil.
func LimitDenied(check billing.LimitCheck) error {
	if check.Decision.Allowed() {
		return nil
	}
	return &DeniedError{Denial: *check.Decision.Denied, Check: check}
}

// FeatureDenied returns a DeniedError when the check is not allowed, otherwise nil.
func FeatureDenied(check billing.FeatureCheck) error {
	if check.Decision.Allowed() {
		return nil
	}
	return &DeniedError{Denial: *check.Decision.Denied, Check: check}
}
