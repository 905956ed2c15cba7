package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164-phone"`
}

type swipeInput struct {
	Direction string `json:"direction" validate:"required,is-swipe-direction"`
}

func TestValidator_PhoneFormat(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&phoneInput{PhoneNumber: "+77011234567"}))
	assert.NoError(t, v.Validate(&phoneInput{PhoneNumber: "+15551234567"}))

	for _, bad := range []string{"77011234567", "+0123", "+7 701 123 45 67", "phone"} {
		err := v.Validate(&phoneInput{PhoneNumber: bad})
		require.Error(t, err, "должен отклонить %q", bad)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		// Сообщение привязано к json-имени поля
		assert.Contains(t, vErr.Errors, "phone_number")
	}
}

func TestValidator_ActiveRole(t *testing.T) {
	t.Parallel()
	v := New()

	type roleQuery struct {
		Role string `json:"role" validate:"required,is-active-role"`
	}

	assert.NoError(t, v.Validate(&roleQuery{Role: "worker"}))
	assert.NoError(t, v.Validate(&roleQuery{Role: "employer"}))
	assert.Error(t, v.Validate(&roleQuery{Role: "admin"}))
	assert.Error(t, v.Validate(&roleQuery{Role: ""}))
}

func TestValidator_SwipeDirection(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&swipeInput{Direction: "left"}))
	assert.NoError(t, v.Validate(&swipeInput{Direction: "right"}))
	assert.Error(t, v.Validate(&swipeInput{Direction: "up"}))
	assert.Error(t, v.Validate(&swipeInput{Direction: ""}))
}
