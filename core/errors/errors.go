// Package errors provides standardized error types and helpers for the quadtile codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds tree construction distinguishes
var (
	// ErrIO indicates a file that is missing or unreadable
	ErrIO = errors.New("io failure")
	// ErrParse indicates text that is not a valid nested-list literal
	ErrParse = errors.New("invalid literal")
	// ErrMalformed indicates a parsed sequence whose shape or values are invalid
	ErrMalformed = errors.New("malformed input")
)

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches the ErrIO sentinel so the kind stays checkable even when an
// underlying cause occupies the Unwrap chain.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError represents text that could not be read as a nested-list literal
type ParseError struct {
	Path    string // File path, if the literal came from a file
	Message string // Error details, including position where available
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse literal: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrParse
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// MalformedError represents a sequence that parsed but violates quadtree
// shape rules: wrong arity, a leaf value outside {0,1}, or mixed nesting.
type MalformedError struct {
	Path     string // File path, if the sequence came from a file
	Fragment string // Offending fragment in literal form
	Detail   string // Description of the violation
}

func (e *MalformedError) Error() string {
	msg := e.Detail
	if e.Fragment != "" {
		msg = fmt.Sprintf("%s: %s", e.Detail, e.Fragment)
	}
	if e.Path != "" {
		return fmt.Sprintf("malformed quadtree in %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("malformed quadtree: %s", msg)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// Helper functions for creating common errors

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(path, message string, err error) *ParseError {
	return &ParseError{
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// NewMalformed creates a MalformedError
func NewMalformed(detail, fragment string) *MalformedError {
	return &MalformedError{
		Detail:   detail,
		Fragment: fragment,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
