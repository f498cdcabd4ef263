package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Errors []FieldError `json:"errors"`
}

func New() *Result {
	return &Result{}
}

func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func (r *Result) HasError() bool {
	return len(r.Errors) > 0
}

func (r *Result) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		r.Add(field, fmt.Sprintf("%s is required", field))
	}
}

func (r *Result) MaxLength(field, value string, n int) {
	if len(value) > n {
		r.Add(field, fmt.Sprintf("%s must be at most %d characters", field, n))
	}
}

func (r *Result) Error() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}
