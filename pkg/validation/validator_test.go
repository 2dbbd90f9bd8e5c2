package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

func TestToListCollectsAllFailures(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(signupPayload{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	errs := ToList(err)
	require.Len(t, errs, 3)

	// Order follows struct field order.
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "must be a valid email", errs[0].Message)
	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, "must be at least 6 characters long", errs[1].Message)
	assert.Equal(t, "name", errs[2].Field)
	assert.Equal(t, "is required", errs[2].Message)
}

func TestToListValidPayload(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(signupPayload{Email: "a@b.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	assert.Nil(t, ToList(err))
}
