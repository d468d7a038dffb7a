// Package validation registers the request validation rules shared by all DTOs.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

// Password policy
const (
	PasswordMinLength = 8
	UsernameMinLength = 3
	UsernameMaxLength = 50
)

var registerOnce sync.Once

// Register installs the custom rules on gin's validator and makes field
// errors report JSON names. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("password", validatePassword)
	})
}

// IsStrongPassword applies the password policy: minimum length, one uppercase letter, one digit
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < PasswordMinLength {
		return false
	}
	var upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FromBindingError converts a gin binding failure into a validation error
// listing every rejected field. Malformed JSON yields a single body error.
func FromBindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("Invalid request body", []apperrors.FieldError{
			{Field: "body", Message: err.Error()},
		})
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return apperrors.NewValidationError("Invalid input", fields)
}

// fieldPath drops the top-level struct name from the namespace, e.g. "RegisterRequest.employerDetails.companyName".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "email":
		return "Invalid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "password":
		return "Password must be at least 8 characters and contain an uppercase letter and a number"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "gt", "gte":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
