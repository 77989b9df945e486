package errors

import (
	"errors"
	"fmt"
	"strings"
)

func Error(msg string) error {
	return errors.New(msg)
}

func Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}

func WrapError(cause error, msg string) error {
	return WrapComplexError(cause, Error(msg))
}

func WrapErrorf(cause error, msg string, args ...interface{}) error {
	return WrapComplexError(cause, Errorf(msg, args...))
}

func WrapComplexError(cause, err error) error {
	if cause == nil {
		cause = Error("<nil cause>")
	}

	return ComplexError{
		Err:   err,
		Cause: cause,
	}
}

// ComplexError pairs a description of the failed step with the error that
// caused it. errors.Is and errors.As see through to the cause.
type ComplexError struct {
	Err   error
	Cause error
}

func (e ComplexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
}

func (e ComplexError) Unwrap() []error {
	return []error{e.Err, e.Cause}
}

type MultiError struct {
	Errors []error
}

func NewMultiError(errors ...error) error {
	return MultiError{Errors: errors}
}

func (e MultiError) Error() string {
	errors := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		errors[i] = err.Error()
	}
	return strings.Join(errors, "\n")
}

func (e MultiError) Unwrap() []error {
	return e.Errors
}
