// Package apperror classifies request failures and renders them as
// {"error": message, "code": code} payloads.
package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindParse
	KindConstraint
	KindUnavailable
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindConstraint:
		return "constraint"
	case KindUnavailable:
		return "unavailable"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Status is the HTTP status used for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindParse:
		return http.StatusBadRequest
	case KindConstraint:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Code is a stable machine readable string,
// Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(code, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg}
}

func Parse(code, msg string, err error) *Error {
	return &Error{Kind: KindParse, Code: code, Message: msg, Err: err}
}

func Constraint(code, msg string, err error) *Error {
	return &Error{Kind: KindConstraint, Code: code, Message: msg, Err: err}
}

func Unavailable(msg string, err error) *Error {
	return &Error{Kind: KindUnavailable, Code: "store_unavailable", Message: msg, Err: err}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Code: "internal_error", Message: msg, Err: err}
}

// KindOf reports the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Payload is the body of every error response.
type Payload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Respond writes err as a JSON error payload and aborts the gin chain.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("internal error", err)
	}

	status := appErr.Kind.Status()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"kind", appErr.Kind.String(),
			"code", appErr.Code,
			"error", err,
		)
	}

	c.AbortWithStatusJSON(status, Payload{Error: appErr.Message, Code: appErr.Code})
}
