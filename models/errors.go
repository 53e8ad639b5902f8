package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the generator and forecaster.
type ErrorKind string

const (
	InvalidConfiguration ErrorKind = "invalid_configuration"
	InsufficientData     ErrorKind = "insufficient_data"
	FitFailure           ErrorKind = "fit_failure"
	NumericOverflow      ErrorKind = "numeric_overflow"
)

// Error is a structured failure: a kind plus a human-readable message.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match two core errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError builds a core error with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err (unwrapping as needed),
// or "" when err is not a core error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
