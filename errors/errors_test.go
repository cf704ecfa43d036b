package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeSink, "sink down")
	if !err.Retryable {
		t.Error("SINK_ERROR should be retryable")
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("session", "abc")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.Details["resource"] != "session" {
		t.Errorf("expected resource=session, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "abc" {
		t.Errorf("expected id=abc, got %v", err.Details["id"])
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("session", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := Internal(fmt.Errorf("boom"))
	if !strings.Contains(err.Error(), "INTERNAL_ERROR") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("unexpected error string: %q", err.Error())
	}

	plain := Conflict("user mismatch")
	if plain.Error() != "CONFLICT: user mismatch" {
		t.Errorf("unexpected error string: %q", plain.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := Sink(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("routing: %w", SessionClosed("s1"))
	if !IsCode(wrapped, ErrCodeSessionClosed) {
		t.Error("expected IsCode to find SESSION_CLOSED through wrapping")
	}
	if IsCode(wrapped, ErrCodeNotFound) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("expected IsCode to reject non-AppError")
	}
}

func TestWithDetail(t *testing.T) {
	err := InvalidInput("line_count", "must be positive").WithDetail("value", -1)
	if err.Details["field"] != "line_count" {
		t.Errorf("expected field detail, got %v", err.Details)
	}
	if err.Details["value"] != -1 {
		t.Errorf("expected value detail, got %v", err.Details)
	}
}
