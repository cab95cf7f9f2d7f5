// Package errors provides the error types used across the board: domain
// errors for fetching tickets, reading the preference store and resolving
// column labels, plus classification helpers.
//
// # Error Types
//
// Domain-specific errors:
//   - FetchError: the ticket feed could not be fetched or decoded
//   - StateError: persisted view preferences are absent or malformed
//   - LookupError: a column key references a user that is not in the feed
//
// Semantic errors:
//   - ValidationError: invalid input such as an unknown group-by value
//
// # Usage
//
//	err := errors.NewFetchError("request failed", cause).WithURL(url)
//	if errors.Is(err, errors.ErrFetchFailed) { ... }
//
//	var fetchErr *errors.FetchError
//	if errors.As(err, &fetchErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors carry a severity, whether a retry could succeed, and whether the
// message is safe to show in the board's status bar.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Feed sentinel errors
var (
	// ErrFetchFailed indicates the ticket feed request did not succeed.
	ErrFetchFailed = New("fetch failed")
	// ErrBadResponse indicates the feed answered with a non-success status.
	ErrBadResponse = New("unexpected response status")
	// ErrDecodeFailed indicates the feed body was not valid board JSON.
	ErrDecodeFailed = New("decode failed")
)

// Preference store sentinel errors
var (
	// ErrPrefsNotFound indicates no preferences were stored under the key.
	ErrPrefsNotFound = New("preferences not found")
	// ErrPrefsMalformed indicates stored preferences could not be decoded.
	ErrPrefsMalformed = New("preferences malformed")
	// ErrStoreCorrupted indicates the store file itself could not be decoded.
	ErrStoreCorrupted = New("store file corrupted")
)

// Lookup sentinel errors
var (
	// ErrUserNotFound indicates a user ID has no entry in the feed's users.
	ErrUserNotFound = New("user not found")
)

// General sentinel errors
var (
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// BoardError is the base interface for the board's errors.
type BoardError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the message is safe to display to users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// format renders "<kind> [k=v, ...]: message: cause".
func (e *baseError) format(kind string, parts []string) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// FetchError reports a failed ticket feed request.
//
// Example:
//
//	err := errors.NewFetchError("request failed", cause).WithURL(url)
//	fmt.Println(err) // "fetch error [url=https://...]: request failed: ..."
type FetchError struct {
	baseError
	URL        string
	StatusCode int
}

// NewFetchError creates a new FetchError. Network failures are retryable;
// cancellation is not.
func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  !errors.Is(cause, context.Canceled),
			userFacing: true,
		},
	}
}

// WithURL records the requested URL or file path.
func (e *FetchError) WithURL(url string) *FetchError {
	e.URL = url
	return e
}

// WithStatusCode records the HTTP status the feed answered with.
func (e *FetchError) WithStatusCode(code int) *FetchError {
	e.StatusCode = code
	e.retryable = code >= 500 || code == 429
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *FetchError) WithRetryable(r bool) *FetchError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *FetchError) Error() string {
	var parts []string
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	return e.format("fetch error", parts)
}

// Is checks if this error matches the target.
func (e *FetchError) Is(target error) bool {
	if _, ok := target.(*FetchError); ok {
		return true
	}
	if target == ErrFetchFailed {
		return true
	}
	if target == ErrCanceled && errors.Is(e.cause, context.Canceled) {
		return true
	}
	return e.baseError.Is(target)
}

// StateError reports persisted view preferences that could not be used.
//
// Example:
//
//	err := errors.NewStateError("decode preferences", errors.ErrPrefsMalformed).WithKey("kanbanViewState")
type StateError struct {
	baseError
	Key  string
	Path string
}

// NewStateError creates a new StateError. Absent preferences are only
// informational; everything else is a warning.
func NewStateError(message string, cause error) *StateError {
	severity := SeverityWarning
	if errors.Is(cause, ErrPrefsNotFound) {
		severity = SeverityInfo
	}
	return &StateError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   severity,
			retryable:  false,
			userFacing: false,
		},
	}
}

// WithKey records the store key.
func (e *StateError) WithKey(key string) *StateError {
	e.Key = key
	return e
}

// WithPath records the store file path.
func (e *StateError) WithPath(path string) *StateError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *StateError) Error() string {
	var parts []string
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key=%s", e.Key))
	}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	return e.format("state error", parts)
}

// Is checks if this error matches the target.
func (e *StateError) Is(target error) bool {
	if _, ok := target.(*StateError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// LookupError reports a column key that names a missing resource.
//
// Example:
//
//	err := errors.NewLookupError("user", "usr-9")
//	fmt.Println(err) // "user 'usr-9' not found"
type LookupError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewLookupError creates a new LookupError.
func NewLookupError(resourceType, resourceID string) *LookupError {
	e := &LookupError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
	if resourceType == "user" {
		e.cause = ErrUserNotFound
	}
	return e
}

// Error returns the formatted error message.
func (e *LookupError) Error() string {
	return e.message
}

// Is checks if this error matches the target.
func (e *LookupError) Is(target error) bool {
	if _, ok := target.(*LookupError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown group-by").WithField("groupBy").WithValue("tag")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return e.format("validation error", parts)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var boardErr BoardError
	if As(err, &boardErr) {
		return boardErr.IsRetryable()
	}

	return Is(err, context.DeadlineExceeded)
}

// IsUserFacing returns true if the error message is safe to display in the
// board's status bar.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    m.errorMessage = err.Error()
//	} else {
//	    m.errorMessage = "Something went wrong (see debug.log)"
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var boardErr BoardError
	if As(err, &boardErr) {
		return boardErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement BoardError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var boardErr BoardError
	if As(err, &boardErr) {
		return boardErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "load preferences")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
