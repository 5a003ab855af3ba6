package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{Kind("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.kind))
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	errMissing := NotFound("thing not found")
	wrapped := fmt.Errorf("load thing: %w", errMissing)

	assert.ErrorIs(t, wrapped, errMissing)
	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Internal(cause)

	assert.Equal(t, InternalMessage, err.Message)
	assert.ErrorIs(t, err, cause)
}

type sample struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s sample) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required.Error("name is required")),
		validation.Field(&s.Email, validation.Required.Error("email is required")),
	)
}

func TestFromValidation(t *testing.T) {
	assert.NoError(t, FromValidation(nil))

	err := FromValidation(sample{}.Validate())
	appErr, ok := As(err)
	require.True(t, ok)

	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, map[string]string{
		"email": "email is required",
		"name":  "name is required",
	}, appErr.Details)
	assert.Equal(t, "Validation error: email: email is required, name: name is required", appErr.Message)
}

func TestFromValidation_SingleRule(t *testing.T) {
	err := FromValidation(validation.Validate("", validation.Required.Error("q is required")))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "q is required", appErr.Details["value"])
}

func TestFromValidation_UnknownError(t *testing.T) {
	err := FromValidation(errors.New("boom"))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindInternal, appErr.Kind)
}
