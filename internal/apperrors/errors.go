package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError  ErrorType = "VALIDATION_ERROR"
	PersistenceError ErrorType = "PERSISTENCE_ERROR"
	StartupError     ErrorType = "STARTUP_ERROR"
	NotFoundError    ErrorType = "NOT_FOUND"
	MethodError      ErrorType = "METHOD_NOT_ALLOWED"
)

// AppError is the single error shape handlers know how to render.
type AppError struct {
	Type       ErrorType
	Message    string
	Detail     string
	HTTPStatus int
	Raw        error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

func New(errType ErrorType, message, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: statusFor(errType),
	}
}

// Wrap attaches err to a new AppError. A nil err yields nil.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: statusFor(errType),
		Raw:        err,
	}
}

func Validation(message string, fields ...string) *AppError {
	detail := ""
	if len(fields) > 0 {
		detail = fmt.Sprintf("missing: %v", fields)
	}
	return New(ValidationError, message, detail)
}

// Persistence reports a storage failure. The client-facing message carries
// the underlying error text. It returns a plain error so a nil cause stays a
// nil interface, and an error that already is an AppError passes through.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Wrap(err, PersistenceError, "Error: "+err.Error())
}

func Startup(err error, message string) *AppError {
	return Wrap(err, StartupError, message)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func Is(err error, errType ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == errType
}

func statusFor(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case MethodError:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
