package core

import "fmt"

type ErrorCode string

const (
	ErrBadRequest  ErrorCode = "USERDIR_BAD_REQUEST"
	ErrNotFound    ErrorCode = "USERDIR_NOT_FOUND"
	ErrUnavailable ErrorCode = "USERDIR_UNAVAILABLE"
	ErrInternal    ErrorCode = "USERDIR_INTERNAL"
)

// HTTPStatus returns the HTTP status code for this error code.
func (e ErrorCode) HTTPStatus() int {
	switch e {
	case ErrBadRequest:
		return 400
	case ErrNotFound:
		return 404
	case ErrUnavailable:
		return 503
	default:
		return 500
	}
}

// AppError pairs an internal code with a client-safe message. The code
// drives status mapping and logging; responses carry only Message as a
// bare JSON string, so underlying error detail never reaches clients.
type AppError struct {
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
