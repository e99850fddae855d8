package plotter

import (
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type parseError struct {
	text string
	err  error
}

func (p parseError) Error() string {
	return fmt.Sprintf("not a finite decimal number: %q", p.text)
}

func (p parseError) Unwrap() error {
	return p.err
}

func newParseError(text string, err error) error {
	return parseError{text: text, err: err}
}

// IsParseError checks if the given error (or any error it wraps) was caused
// by text that could not be read as a number.
func IsParseError(err error) bool {
	for err != nil {
		if _, ok := err.(parseError); ok {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(validationError)
	return ok
}
