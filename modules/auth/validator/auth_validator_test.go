package validator

import (
	"testing"

	"pickup/modules/auth/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignUpRequest(t *testing.T) {
	assert.False(t, ValidateSignUpRequest(&dto.SignUpRequest{Email: "ana@example.com", Password: "longenough", Name: "Ana"}).HasError())

	result := ValidateSignUpRequest(&dto.SignUpRequest{Email: "nope", Password: "short"})
	assert.Len(t, result.Errors, 3)
}

func TestValidateSignInRequest(t *testing.T) {
	assert.True(t, ValidateSignInRequest(&dto.SignInRequest{}).HasError())
	assert.False(t, ValidateSignInRequest(&dto.SignInRequest{Email: "a@b.c", Password: "x"}).HasError())
}
