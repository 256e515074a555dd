package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "DB_ERROR",
				Message: "query failed",
			},
			expected: "[DB_ERROR] query failed",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "query failed without code",
			},
			expected: "query failed without code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestValidationErrorError(t *testing.T) {
	withField := &ValidationError{Field: "denomination", Message: "must be a multiple of 1000"}
	if withField.Error() != "validation failed for field 'denomination': must be a multiple of 1000" {
		t.Errorf("unexpected message: %q", withField.Error())
	}

	withoutField := &ValidationError{Message: "payload malformed"}
	if withoutField.Error() != "validation failed: payload malformed" {
		t.Errorf("unexpected message: %q", withoutField.Error())
	}
}

func TestNewValidationErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError("denomination", "must be a multiple of 1000")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected error to wrap ErrValidation, got %v", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError in chain, got %v", err)
	}
	if ve.Field != "denomination" {
		t.Errorf("expected field 'denomination', got %q", ve.Field)
	}
}

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapDatabaseError(cause, "failed to upsert payment")

	if !errors.Is(err, ErrDatabase) {
		t.Errorf("expected error to wrap ErrDatabase, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected error to wrap the cause, got %v", err)
	}
}
