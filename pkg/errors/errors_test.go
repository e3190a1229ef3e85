package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "measurement utility not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "measurement utility not found" {
		t.Errorf("expected message 'measurement utility not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("deadline exceeded")
	ctx := map[string]any{
		"command": "speedtest",
		"timeout": "100s",
	}

	err := WrapWithContext(ErrCodeTimeout, "measurement timed out", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["command"] != "speedtest" {
		t.Errorf("expected command to be speedtest")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "config error",
			err:      New(ErrCodeConfig, "interval must be positive"),
			expected: "[INVALID_CONFIG] interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	base := Wrap(ErrCodeTimeout, "measurement timed out", errors.New("deadline"))

	if !IsCode(base, ErrCodeTimeout) {
		t.Error("IsCode should match the error's own code")
	}
	if IsCode(base, ErrCodeConfig) {
		t.Error("IsCode should not match a different code")
	}

	// Code is still visible through further fmt wrapping.
	wrapped := fmt.Errorf("tick failed: %w", base)
	if !IsCode(wrapped, ErrCodeTimeout) {
		t.Error("IsCode should see through wrapped errors")
	}

	if IsCode(errors.New("plain"), ErrCodeTimeout) {
		t.Error("IsCode should not match plain errors")
	}
	if IsCode(nil, ErrCodeTimeout) {
		t.Error("IsCode should not match nil")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeConfig,
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeLogWrite,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
