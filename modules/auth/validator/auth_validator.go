package validator

import (
	"net/mail"

	"pickup/core/validator"
	"pickup/modules/auth/dto"
)

const minPasswordLength = 8

func validateCredentials(result *validator.Result, email, password string) {
	if _, err := mail.ParseAddress(email); err != nil {
		result.Add("email", "email is invalid")
	}
	if len(password) < minPasswordLength {
		result.Add("password", "password must be at least 8 characters")
	}
}

func ValidateSignUpRequest(req *dto.SignUpRequest) *validator.Result {
	result := validator.New()
	validateCredentials(result, req.Email, req.Password)
	result.Required("name", req.Name)
	return result
}

func ValidateSignInRequest(req *dto.SignInRequest) *validator.Result {
	result := validator.New()
	result.Required("email", req.Email)
	result.Required("password", req.Password)
	return result
}
