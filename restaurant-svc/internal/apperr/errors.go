package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows the HTTP status it should be reported with.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, message, nil)
}

func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Database wraps a store failure, keeping its text in the message for diagnostics.
func Database(err error) *Error {
	return New(http.StatusInternalServerError, "Database error: "+err.Error(), err)
}

func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

type response struct {
	Detail string `json:"detail"`
}

// Write renders err as {"detail": ...}. Errors that are not *Error become a generic 500.
func Write(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	detail := "Internal server error"

	var appErr *Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		detail = appErr.Message
	}

	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response{Detail: detail})
}
