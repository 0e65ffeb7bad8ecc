// Package errors provides the structured build error type (BuildError) used
// for category-based classification across the CLI and pipeline.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of a build error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"

	// External tool integration errors
	CategoryToolchain ErrorCategory = "toolchain"
	CategoryTailwind  ErrorCategory = "tailwind"
	CategoryMinify    ErrorCategory = "minify"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// BuildError is a structured error with category and captured tool output.
// Every failure in htmlpress is a BuildError: a missing external tool, a
// non-zero tool exit, or a missing precondition. Stdout/Stderr carry the
// failing tool's output verbatim for diagnosis.
type BuildError struct {
	Category ErrorCategory
	Message  string
	Cause    error
	Stdout   string
	Stderr   string
}

// Error implements the error interface
func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Category, e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\n%s", out)
	}
	return b.String()
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithOutput attaches captured stdout/stderr from a failed tool invocation.
func (e *BuildError) WithOutput(stdout, stderr string) *BuildError {
	e.Stdout = stdout
	e.Stderr = stderr
	return e
}

// New creates a new BuildError
func New(category ErrorCategory, message string) *BuildError {
	return &BuildError{Category: category, Message: message}
}

// Wrap creates a new BuildError that wraps an existing error
func Wrap(err error, category ErrorCategory, message string) *BuildError {
	return &BuildError{Category: category, Message: message, Cause: err}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if be, ok := err.(*BuildError); ok {
		return be.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if not a BuildError
func GetCategory(err error) ErrorCategory {
	if be, ok := err.(*BuildError); ok {
		return be.Category
	}
	return CategoryInternal
}
