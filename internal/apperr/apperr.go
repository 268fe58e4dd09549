// Package apperr defines the error taxonomy shared by every core operation.
//
// Four kinds cover everything the store can produce: bad input, missing
// record, storage-engine failure, and a detected ledger inconsistency.
// Handlers map kinds to HTTP status codes; raw engine errors stay wrapped
// inside and never reach the caller directly.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindStorage    Kind = "STORAGE_ERROR"
	KindIntegrity  Kind = "INTEGRITY_ERROR"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Op      string `json:"op,omitempty"` // the attempted operation, set for storage errors
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Message, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	case e.Op != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps a storage-engine failure with the name of the operation
// that was being attempted.
func Storage(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Op: op, Message: "storage operation failed", Cause: cause}
}

func Integrity(format string, args ...any) *Error {
	return &Error{Kind: KindIntegrity, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or KindStorage for anything outside the
// taxonomy so unknown failures are never presented as input errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindIntegrity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
