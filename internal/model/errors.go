package model

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is reported when file contents are not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ConfigError is returned when the run cannot be configured: a required
// argument is missing or the working directory cannot be resolved.
type ConfigError struct {
	Message string
	Err     error
}

// NewConfigError creates a ConfigError wrapping err (which may be nil).
func NewConfigError(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IoError is returned when reading input or writing output fails.
type IoError struct {
	Op   string // "read" or "write"
	Path Path   // empty for output errors
	Err  error
}

// NewIoError creates an IoError for the given operation and path.
func NewIoError(op string, path Path, err error) *IoError {
	return &IoError{Op: op, Path: path, Err: err}
}

// Error implements the error interface for IoError.
func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IoError) Unwrap() error {
	return e.Err
}
