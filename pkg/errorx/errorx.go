package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business code.
// It implements the error interface, wraps an underlying cause and is
// recognised by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business code
	Msg   string // user-visible reason
	cause error  // wrapped underlying error
}

// Error implements the standard error interface.
// When a cause is present the format is "msg: cause", otherwise just msg.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap supports errors.Is/errors.As traversal into the cause.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without a cause.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, CodeNotFound, "member not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain.
// Non-CodeError values map to CodeInternal.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeInternal
}

// Business codes, one per failure class the API can surface.
const (
	CodeSuccess           = 1000 // success
	CodeInvalidArgument   = 1001 // malformed request, bad upload, short password
	CodeUnauthenticated   = 1002 // missing token or failed credential check
	CodeForbidden         = 1003 // role or ownership violation
	CodeNotFound          = 1004 // entity does not exist
	CodeConflict          = 1005 // unique constraint violation (email or member id)
	CodeResourceExhausted = 1006 // no free member number left
	CodeInternal          = 1007 // unexpected store/upload failure
)

// Predefined instances for the common cases.
// Usable both as return values and as errors.Is targets.
var (
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid request")
	ErrInternal        = New(CodeInternal, "internal server error")
)

// IsNotFound reports whether err is a "not found" failure,
// including gorm.ErrRecordNotFound surfaced from the store.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
