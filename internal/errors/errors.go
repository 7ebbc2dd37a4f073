package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, reason, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Reason  Reason                 `json:"reason,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := string(e.Code)
	if e.Reason != ReasonNone {
		prefix = fmt.Sprintf("%s(%s)", e.Code, e.Reason)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code and reason
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code && e.Reason == targetErr.Reason
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewReason creates an error for a domain rule violation
func NewReason(reason Reason, message string) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
	}
}

// Wrap wraps an existing error, preserving its code and reason if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Reason:  existingErr.Reason,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithReason wraps an error under a domain reason, replacing any code it had
func WrapWithReason(err error, reason Reason, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := NewReason(reason, message)
	wrapped.Cause = err

	var existingErr *Error
	if errors.As(err, &existingErr) {
		for k, v := range existingErr.Meta {
			wrapped.WithMeta(k, v)
		}
	}

	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Unavailablef creates an unavailable error with formatted message
func Unavailablef(format string, args ...interface{}) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// Refine engine reasons

// ReadOnlyTarget reports a mutation aimed at a compendium document
func ReadOnlyTarget(message string) *Error {
	return NewReason(ReasonReadOnlyTarget, message)
}

// InvalidModifierKind reports a non-refine document dropped on a refine slot
func InvalidModifierKind(message string) *Error {
	return NewReason(ReasonInvalidModifierKind, message)
}

// IncompatibleCategoryf reports a refine that does not apply to the weapon group
func IncompatibleCategoryf(format string, args ...interface{}) *Error {
	return NewReason(ReasonIncompatibleCategory, fmt.Sprintf(format, args...))
}

// DuplicateModifierf reports a refine already applied to the weapon
func DuplicateModifierf(format string, args ...interface{}) *Error {
	return NewReason(ReasonDuplicateModifier, fmt.Sprintf(format, args...))
}

// EmptySlotf reports a detach from a slot with nothing in it
func EmptySlotf(format string, args ...interface{}) *Error {
	return NewReason(ReasonEmptySlot, fmt.Sprintf(format, args...))
}

// Seed engine reasons

// PermissionDenied reports a privileged action attempted by a regular user
func PermissionDenied(message string) *Error {
	return NewReason(ReasonPermissionDenied, message)
}

// InvalidSeedSourcef reports a seed file that could not be fetched or is not a JSON array
func InvalidSeedSourcef(format string, args ...interface{}) *Error {
	return NewReason(ReasonInvalidSeedSource, fmt.Sprintf(format, args...))
}

// CollectionUnavailablef reports a compendium that could not be resolved or created
func CollectionUnavailablef(format string, args ...interface{}) *Error {
	return NewReason(ReasonCollectionUnavailable, fmt.Sprintf(format, args...))
}
