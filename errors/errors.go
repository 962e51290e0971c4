package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with a stable machine-readable code.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(status int, code, message string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Status:  e.Status,
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Status:  e.Status,
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// Validation errors (400)
func NewValidation(message string) *Error {
	return New(http.StatusBadRequest, "validation_error", message)
}

// Authentication errors (401)
var (
	ErrMissingToken = New(http.StatusUnauthorized, "missing_token", "Access token required")
	ErrInvalidToken = New(http.StatusUnauthorized, "invalid_token", "Invalid token")
	ErrExpiredToken = New(http.StatusUnauthorized, "expired_token", "Token expired")
)

// Authorization errors (403)
func NewForbidden(message string) *Error {
	return New(http.StatusForbidden, "forbidden", message)
}

// Not found errors (404)
func NewNotFound(message string) *Error {
	return New(http.StatusNotFound, "not_found", message)
}

// Internal errors (500)
func NewInternal(message string, err error) *Error {
	return New(http.StatusInternalServerError, "internal_error", message).Wrap(err)
}

// Abort writes err as the JSON response and aborts the request chain.
func Abort(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = NewInternal("Internal server error", err)
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{
		"success": false,
		"code":    appErr.Code,
		"error":   appErr.Message,
	})
}
