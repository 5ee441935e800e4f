package utils

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/shared/errors"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Tier     string `json:"plan_tier" validate:"oneof=free starter pro ultra"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(signupForm{Email: "nope", Password: "123", Tier: "gold"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "password must be at least 6 characters long")
	assert.Contains(t, appErr.Details, "plan_tier must be one of [free starter pro ultra]")

	assert.NoError(t, ValidateStruct(signupForm{Email: "a@b.co", Password: "secret", Tier: "pro"}))
}

func TestTranslateBindingError_NonValidator(t *testing.T) {
	err := TranslateBindingError(stderrors.New("unexpected EOF"))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}
