// internal/core/model/logic_error.go
package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a service failure; the HTTP layer maps it to a status.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota + 1
	KindForbidden
	KindUnprocessable
	KindNotFound
	KindInternal
)

// ErrMalformedID marks an identifier that does not match the store's id
// format. Adapters wrap it so services can tell a malformed id (422) apart
// from a well-formed but absent one (404).
var ErrMalformedID = errors.New("malformed identifier")

// LogicError is the caller-facing failure of a service operation. Detail is
// the message exposed at the boundary; Cause keeps the step-specific failure
// for logs and tests.
type LogicError struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *LogicError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Cause)
	}
	return e.Detail
}

func (e *LogicError) Unwrap() error {
	return e.Cause
}

func Unauthorized(detail string) *LogicError {
	return &LogicError{Kind: KindUnauthorized, Detail: detail}
}

func Forbidden(detail string) *LogicError {
	return &LogicError{Kind: KindForbidden, Detail: detail}
}

func Unprocessable(detail string) *LogicError {
	return &LogicError{Kind: KindUnprocessable, Detail: detail}
}

func NotFound(detail string) *LogicError {
	return &LogicError{Kind: KindNotFound, Detail: detail}
}

func Internal(detail string, cause error) *LogicError {
	return &LogicError{Kind: KindInternal, Detail: detail, Cause: cause}
}

// CredentialsError is the canonical failure for a token that cannot be
// validated or resolved to a user.
func CredentialsError(cause error) *LogicError {
	return &LogicError{Kind: KindUnauthorized, Detail: "could not validate the credentials", Cause: cause}
}

// ForbiddenOperationError is the canonical failure for an authenticated user
// acting on a resource they do not own.
func ForbiddenOperationError() *LogicError {
	return Forbidden("Forbidden operation")
}

// KindOf extracts the error kind, defaulting to KindInternal for errors that
// did not come out of a service operation.
func KindOf(err error) ErrorKind {
	var le *LogicError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindInternal
}
