package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Session errors
const (
	// ErrCodeNotFound indicates the requested session was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates a conflict with the current state of the session.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeSessionClosed indicates the session has already been torn down.
	ErrCodeSessionClosed ErrorCode = "SESSION_CLOSED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeValidation indicates a struct failed tag validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeSink indicates the display sink rejected an update.
	ErrCodeSink ErrorCode = "SINK_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSink:     true,
	ErrCodeInternal: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
