// Package apperr defines the API error kinds and their HTTP status mapping.
package apperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HTTPError is implemented by errors that know their response status.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a missing resource (also used for malformed ids).
	NotFoundError struct{ Message string }

	// BadRequestError indicates a malformed request.
	BadRequestError struct{ Message string }

	// DuplicateError indicates a unique-field violation.
	DuplicateError struct{ Message string }

	// UnauthorizedError indicates missing or invalid credentials.
	UnauthorizedError struct{ Message string }

	// ForbiddenError indicates an authenticated principal without the required role.
	ForbiddenError struct{ Message string }

	// TooLargeError indicates a request body over the configured limit.
	TooLargeError struct{ Message string }
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *BadRequestError) Error() string   { return e.Message }
func (e *DuplicateError) Error() string    { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }
func (e *TooLargeError) Error() string     { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *BadRequestError) StatusCode() int   { return http.StatusBadRequest }
func (e *DuplicateError) StatusCode() int    { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }
func (e *TooLargeError) StatusCode() int     { return http.StatusRequestEntityTooLarge }

// ValidationError carries per-field messages. Message joins them in field order.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e.Fields[k])
	}
	if len(msgs) == 0 {
		return "validation failed"
	}
	return strings.Join(msgs, ", ")
}

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

func NotFound(msg string) error     { return &NotFoundError{Message: msg} }
func BadRequest(msg string) error   { return &BadRequestError{Message: msg} }
func Duplicate(msg string) error    { return &DuplicateError{Message: msg} }
func Unauthorized(msg string) error { return &UnauthorizedError{Message: msg} }
func Forbidden(msg string) error    { return &ForbiddenError{Message: msg} }
func TooLarge(msg string) error     { return &TooLargeError{Message: msg} }

// Invalid builds a ValidationError for a single field.
func Invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// StatusCode classifies err. Anything not carrying a status is a 500.
func StatusCode(err error) int {
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text safe to send to clients.
func PublicMessage(err error) string {
	var he HTTPError
	if errors.As(err, &he) {
		return he.Error()
	}
	return "Server Error"
}

// FromValidation converts ozzo-validation field errors into a ValidationError.
// Internal rule failures pass through unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		fields := make(map[string]string, len(errs))
		for k, e := range errs {
			fields[k] = e.Error()
		}
		return &ValidationError{Fields: fields}
	}
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return err
	}
	return BadRequest(err.Error())
}
