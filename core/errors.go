package core

import (
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError is a client error; the API answers it with 400.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

// FieldErrorf is a ValidationError carrying a single field.
func FieldErrorf(field, format string, args ...interface{}) error {
	err := errors.Errorf(format, args...)
	return NewValidationError(err, FieldError{Field: field, Error: err.Error()})
}

func (err ValidationError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	msgs := make([]string, len(err.Fields))
	for i, f := range err.Fields {
		msgs[i] = f.Field + ": " + f.Error
	}
	return strings.Join(msgs, "; ")
}

type shutdown struct {
	message string
}

// NewShutdownError asks the server to stop gracefully once the current
// request has been answered.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
