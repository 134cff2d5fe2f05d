package services

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable machine-readable classification attached to
// every domain failure. Handlers map kinds to HTTP statuses.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindForbidden          ErrorKind = "forbidden"
	KindInvalidState       ErrorKind = "invalid_state"
	KindEmptyCart          ErrorKind = "empty_cart"
	KindPaymentNotVerified ErrorKind = "payment_not_verified"
	KindConflict           ErrorKind = "conflict"
	KindUpstream           ErrorKind = "upstream"
	KindInternal           ErrorKind = "internal"
)

// DomainError carries an ErrorKind plus a human-readable message. It
// wraps an optional cause so callers can still unwrap storage errors.
type DomainError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError builds a DomainError with a formatted message.
func NewDomainError(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapDomainError attaches a cause, typically a repository error.
func WrapDomainError(kind ErrorKind, cause error, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the ErrorKind from err, or KindInternal when err is
// not a DomainError.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
