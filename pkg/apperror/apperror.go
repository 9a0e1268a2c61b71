package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Base errors classify every failure the API can surface. Use cases
// wrap them via the constructors below; the HTTP layer maps them to
// status codes with ToHTTPStatus.
var (
	ErrNotFound     = errors.New("not found")
	ErrPermission   = errors.New("permission denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func New(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	return New(ErrNotFound,
		fmt.Sprintf("%s not found", resource),
		fmt.Sprintf("%s '%s' does not exist", resource, identifier), nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return New(ErrInvalidInput, "invalid input", details, err)
}

func NewConflict(resource, field, value string) *AppError {
	return New(ErrConflict,
		fmt.Sprintf("%s already exists", resource),
		fmt.Sprintf("%s with %s '%s' already exists", resource, field, value), nil)
}

func NewUnauthorized(details string, err error) *AppError {
	return New(ErrUnauthorized, "authentication required", details, err)
}

func NewPermissionDenied(details string) *AppError {
	return New(ErrPermission, "permission denied", details, nil)
}

func NewInternal(details string, err error) *AppError {
	return New(ErrInternal, "internal server error", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON renders the client-visible part of the error. Details and the
// wrapped cause stay server-side.
func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
