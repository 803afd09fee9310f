// Package common provides shared constants, types, and utilities
// used across exforms.
package common

import "errors"

// Sentinel errors. Check them with errors.Is().
var (
	// Window-position errors.
	ErrPositionNotFound  = errors.New("window position not found")
	ErrMalformedPosition = errors.New("malformed window position")
	ErrInvalidWindowName = errors.New("invalid window name")

	// Configuration errors.
	ErrConfigLoad    = errors.New("failed to load configuration")
	ErrConfigSave    = errors.New("failed to save configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Instance guard errors.
	ErrGuardUnavailable = errors.New("instance guard unavailable")
	ErrGuardNotHeld     = errors.New("instance guard not held")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
