package utils

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindValidation
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError carries a client-safe message. Err holds the underlying cause and
// is only ever logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrNotFound(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func ErrForbidden(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func ErrValidation(msg string, fields map[string]string) error {
	return &AppError{Kind: KindValidation, Message: msg, Fields: fields}
}

func ErrConflict(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

func ErrInternal(msg string, err error) error {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// ErrorKindOf reports KindInternal for anything that is not an *AppError.
func ErrorKindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// AsAppError never returns nil for a non-nil err.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}
