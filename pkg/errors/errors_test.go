package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRequest, "test message: %s", "value")

	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRequest)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}
}

func TestNewField(t *testing.T) {
	err := NewField(ErrCodeMissingField, "business_info", "business_info is required")

	if err.Field != "business_info" {
		t.Errorf("Field = %q, want %q", err.Field, "business_info")
	}
	if Field(err) != "business_info" {
		t.Errorf("Field(err) = %q, want %q", Field(err), "business_info")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(ErrCodeRenderFailed, cause, "encode png")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if GetCode(err) != ErrCodeRenderFailed {
		t.Errorf("GetCode = %v, want %v", GetCode(err), ErrCodeRenderFailed)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidLabelType, "unknown label type")

	if !Is(err, ErrCodeInvalidLabelType) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeNotFound) {
		t.Error("Is should not match a plain error")
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidRequest, true},
		{ErrCodeMissingField, true},
		{ErrCodeInvalidLabelType, true},
		{ErrCodeInvalidFormat, true},
		{ErrCodeNotFound, false},
		{ErrCodeRenderFailed, false},
		{ErrCodeTimeout, false},
		{ErrCodeInternal, false},
	}

	for _, tt := range tests {
		if got := IsValidation(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsValidation(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInternal, "boom")); got != "boom" {
		t.Errorf("UserMessage = %q, want %q", got, "boom")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q, want %q", got, "plain")
	}
}
