package paraphrase

import (
	"errors"
	"fmt"
)

// Kind classifies a paraphrase failure.
type Kind int

// Kind values. The zero value is not a valid kind.
const (
	KindInvalidInput Kind = iota + 1
	KindAIService
	KindInternal
)

// Sentinel errors for matching a Kind with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAIService    = errors.New("ai service error")
	ErrInternal     = errors.New("internal server error")
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindAIService:
		return "ai_service_error"
	case KindInternal:
		return "internal_server_error"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindAIService:
		return ErrAIService
	default:
		return ErrInternal
	}
}

// Error is a classified paraphrase failure carrying a client-facing message.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// NewInvalidInput creates an error for a rejected client request.
func NewInvalidInput(message string) *Error {
	return &Error{kind: KindInvalidInput, message: message}
}

// NewAIServiceError creates an error for a failure attributable to the provider.
// The cause is kept for errors.Unwrap; it is not added to the message.
func NewAIServiceError(message string, cause error) *Error {
	return &Error{kind: KindAIService, message: message, cause: cause}
}

// NewInternalError creates an error for a local misconfiguration or fault.
func NewInternalError(message string) *Error {
	return &Error{kind: KindInternal, message: message}
}

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client-facing message.
func (e *Error) Message() string { return e.message }

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind.sentinel(), e.message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.kind.sentinel()
}

// KindOf returns the Kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.kind
	}
	return KindInternal
}
