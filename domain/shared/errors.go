/*
Package shared - errors shared across the domain layer

Design:
1. Sentinel errors are the classification used with errors.Is()
2. DomainError captures the call stack when created and formats it lazily
3. Domain errors carry no transport concepts such as HTTP status codes
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// Sentinel Errors
// ============================================================================

var (
	// ErrNotFound resource not found
	ErrNotFound = errors.New("not found")

	// ErrConflict resource conflict
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput input failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized caller is not authenticated
	ErrUnauthorized = errors.New("unauthorized")
)

// ============================================================================
// Domain Error
// ============================================================================

// DomainError carries business context and the stack of the point where it was raised
type DomainError struct {
	// Err is the underlying sentinel, used by errors.Is()
	Err error

	// Entity that raised the error ("cart", "product", ...)
	Entity string

	// Message is human readable
	Message string

	// Field is set for validation errors
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured frames. Only called when logging.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack captures the current call stack.
// skip is usually 3: runtime.Callers, CaptureStack, NewXxxError
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders frames as "file:line function", dropping runtime frames
// and keeping at most 10.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) >= 10 {
			break
		}
	}
	return result
}

// NewNotFoundError wraps a sentinel as a "not found" domain error.
// sentinel may be nil, in which case ErrNotFound is used.
func NewNotFoundError(entity, message string, sentinel error) error {
	if sentinel == nil {
		sentinel = ErrNotFound
	}
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError wraps a sentinel as a validation failure on field.
func NewValidationError(entity, field, reason string, sentinel error) error {
	if sentinel == nil {
		sentinel = ErrInvalidInput
	}
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// Stacker is implemented by errors that can report where they were raised
type Stacker interface {
	Stack() []string
}
