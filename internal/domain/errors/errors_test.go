package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsSurvivesWrappingAndDetails(t *testing.T) {
	wrapped := ErrCustomerNotFound.WrapMessage("load customer 7")
	assert.True(t, stderrors.Is(wrapped, ErrCustomerNotFound))
	assert.False(t, stderrors.Is(wrapped, ErrAddressNotFound))

	detailed := ErrInvalidID.WithDetails("abc")
	assert.True(t, stderrors.Is(detailed, ErrInvalidID))
	assert.Equal(t, "abc", detailed.Details())

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, NewValidationError(nil))

	err := NewValidationError([]FieldViolation{
		{Field: "phone", Rule: "phone", Message: "must be exactly 10 digits"},
		{Field: "first_name", Rule: "min", Message: "must be at least 2 characters"},
	})

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", err.ErrorCode())
	assert.Equal(t, []string{"phone", "first_name"}, err.Fields())
	assert.Contains(t, err.Error(), "phone: must be exactly 10 digits")
	assert.True(t, stderrors.Is(err, ErrValidationFailed))
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := NewDatabaseExecuteError(cause, "failed to insert customer")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to insert customer", err.Details())
}
