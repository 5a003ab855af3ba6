// Package apperror defines the error kinds every handler maps to an HTTP status.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies an error for the response envelope.
type Kind string

const (
	KindValidation Kind = "validation"
	KindBadRequest Kind = "bad_request"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// statusByKind is the single kind -> status table.
var statusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindBadRequest: http.StatusBadRequest,
	KindNotFound:   http.StatusNotFound,
	KindConflict:   http.StatusConflict,
	KindInternal:   http.StatusInternalServerError,
}

// InternalMessage is the only text clients see for unexpected faults.
const InternalMessage = "Internal server error"

// Error is a classified error. Domain packages declare their sentinels as *Error
// so that errors.Is keeps working across wrapping.
type Error struct {
	Kind    Kind
	Message string
	// Details holds per-field messages for validation failures.
	Details map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status for a kind; unknown kinds are internal faults.
func Status(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func BadRequest(message string) *Error { return New(KindBadRequest, message) }

// Internal wraps an unexpected fault. The cause is kept for logging only.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, cause: cause}
}

// Validation builds a validation error from field -> message pairs.
func Validation(details map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation error: " + joinDetails(details),
		Details: details,
	}
}

// FromValidation converts the result of an ozzo Validate call.
// nil stays nil; errors that are not validation.Errors are treated as internal.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		flatten("", verrs, details)
		return Validation(details)
	}

	var rule validation.Error
	if errors.As(err, &rule) {
		return Validation(map[string]string{"value": rule.Error()})
	}

	return Internal(fmt.Errorf("validate: %w", err))
}

// As extracts a *Error from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func flatten(prefix string, verrs validation.Errors, into map[string]string) {
	for field, ferr := range verrs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(ferr, &nested) {
			flatten(key, nested, into)
			continue
		}
		into[key] = ferr.Error()
	}
}

func joinDetails(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+details[k])
	}
	return strings.Join(parts, ", ")
}
