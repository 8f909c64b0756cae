package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries a service failure to the HTTP boundary: Status picks the
// response code, Code is the machine-readable category, Message the human
// phrasing, Details an optional structured payload, Err the wrapped cause.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func NotFound(message string, err error) *Error {
	return New(http.StatusNotFound, "NotFoundError", message, err)
}

func Conflict(message string, err error) *Error {
	return New(http.StatusConflict, "ConflictError", message, err)
}

func BadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, "BadRequestError", message, err)
}

func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, "InternalError", message, err)
}

// Status extracts the HTTP status from err, defaulting to 500 for anything
// that is not an *Error.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// Code extracts the machine-readable category from err, empty when absent.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// Message extracts the human-readable message from err, empty when absent.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return ""
}

// Details extracts the structured detail payload from err, nil when absent.
func Details(err error) any {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Details
	}
	return nil
}
