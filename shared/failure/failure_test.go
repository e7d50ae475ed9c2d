package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "MissingSharerHeader",
			failure: failure.MissingSharerHeader,
			code:    http.StatusUnauthorized,
			message: "X-Sharer-User-Id header is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("item is already booked for this period"),
			code:    http.StatusBadRequest,
			message: "item is already booked for this period",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing header"),
			code:    http.StatusUnauthorized,
			message: "missing header",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("booking has already been decided"),
			code:    http.StatusConflict,
			message: "booking has already been decided",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("only the item owner may decide a booking"),
			code:    http.StatusForbidden,
			message: "only the item owner may decide a booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error")
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}

			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}

			if !failure.Is(tt.err, tt.code) {
				t.Errorf("expected Is to report code %d", tt.code)
			}
		})
	}
}

func TestNilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	err := errors.New("plain error")

	if got := failure.GetCode(err); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code 500, got %d", got)
	}

	if failure.Is(err, http.StatusInternalServerError) {
		t.Error("expected Is to be false for a plain error")
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	err := failure.NotFound("item not found")
	wrapped := errors.Join(errors.New("context"), err)

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure code 404, got %d", got)
	}
}
