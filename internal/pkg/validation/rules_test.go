package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Secret123", true},
		{"secret123", false},
		{"SecretPass", false},
		{"Sec123", false},
		{"ÄBCDEFG1", true},
		{"éééA1x", false},
		{"ééééééA1", true},
	}
	for _, tt := range tests {
		if got := IsStrongPassword(tt.in); got != tt.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type signup struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,password"`
	Email    string `json:"email" binding:"required,email"`
}

func TestFromBindingError_FieldNames(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(&signup{Username: "ab", Password: "weak", Email: "nope"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	converted := FromBindingError(err)
	if !errors.Is(converted, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation category, got %v", converted)
	}

	var ce *apperrors.CustomError
	if !errors.As(converted, &ce) {
		t.Fatal("expected CustomError")
	}
	got := map[string]bool{}
	for _, f := range ce.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"username", "password", "email"} {
		if !got[want] {
			t.Errorf("missing field error for %q in %+v", want, ce.Fields)
		}
	}
}

func TestFromBindingError_Malformed(t *testing.T) {
	converted := FromBindingError(errors.New("unexpected EOF"))

	var ce *apperrors.CustomError
	if !errors.As(converted, &ce) || len(ce.Fields) != 1 || ce.Fields[0].Field != "body" {
		t.Fatalf("unexpected conversion: %+v", converted)
	}
}
