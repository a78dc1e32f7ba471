package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  NotFound("user not found"),
			want: "user not found",
		},
		{
			name: "error with cause",
			err:  Wrap(errors.New("connection refused"), ErrCodeUnavailable, "auth gateway unreachable"),
			want: "auth gateway unreachable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	if got := Wrap(nil, ErrCodeInternal, "ignored"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}

func TestPredicates_ThroughWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "conflict", err: Conflictf("email %s taken", "a@b.com"), check: IsConflict},
		{name: "validation", err: ValidationField("email", "bad"), check: IsValidation},
		{name: "unavailable", err: New(ErrCodeUnavailable, "down"), check: IsUnavailable},
		{name: "timeout", err: New(ErrCodeTimeout, "slow"), check: IsTimeout},
		{name: "canceled", err: New(ErrCodeCanceled, "stop"), check: IsCanceled},
		{name: "internal", err: Internal("oops"), check: IsInternal},
		{name: "not found", err: NotFound("missing"), check: IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("create user: %w", tt.err)
			if !tt.check(wrapped) {
				t.Errorf("predicate did not match wrapped %v", wrapped)
			}
		})
	}
}

func TestGetCodeAndField(t *testing.T) {
	err := fmt.Errorf("outer: %w", ValidationField("username", "too short"))
	if got := GetCode(err); got != ErrCodeValidation {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeValidation)
	}
	if got := GetField(err); got != "username" {
		t.Errorf("GetField() = %q, want username", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}
