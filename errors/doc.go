// Package errors provides the structured error type used across captionkit.
//
// Errors carry a machine-readable code, a human-readable message, optional
// details and the underlying cause. Caption processing itself never fails;
// these errors surface from lifecycle routing (unknown sessions, conflicting
// stop signals) and from configuration loading.
package errors
