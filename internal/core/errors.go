// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"
)

// Sentinel errors shared across layers. Repositories and services wrap
// these with fmt.Errorf("...: %w", err); handlers unwrap them with
// errors.Is at the boundary and map them to HTTP responses.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// AppError is an error carrying its HTTP mapping. The Message is the only
// detail ever written to a response body; Err is for logs and errors.Is.
type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
	)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		"FORBIDDEN",
	)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		resource+" not found",
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		field+" already exists",
		http.StatusBadRequest,
		"DUPLICATE",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"invalid token",
		http.StatusUnauthorized,
		"TOKEN_INVALID",
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token expired",
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
	)
}
