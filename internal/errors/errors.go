package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Category classifies an error by the subsystem concern it belongs to.
// Categories let callers apply one surfacing policy across otherwise
// unrelated subsystems (config parsing, command execution, window control).
type Category string

const (
	// CategoryCommand covers failures running external commands.
	CategoryCommand Category = "command"

	// CategoryValidation covers content-level validation failures.
	CategoryValidation Category = "validation"

	// CategoryFileSystem covers filesystem failures (read, write, mkdir).
	CategoryFileSystem Category = "filesystem"

	// CategoryConfiguration covers configuration lifecycle failures
	// (missing file, bootstrap failure).
	CategoryConfiguration Category = "configuration"

	// CategoryParse covers syntax-level document parse failures.
	CategoryParse Category = "parse"

	// CategoryWindow covers window-manager failures.
	CategoryWindow Category = "window"

	// CategorySystem covers everything else.
	CategorySystem Category = "system"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error is the application-wide error type: an underlying error tagged with
// the subsystem category it originated from.
type Error struct {
	// Category classifies the failure.
	Category Category

	// Err is the underlying error.
	Err error
}

// Categorize wraps err with a category tag. Returns nil if err is nil.
func Categorize(category Category, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Category: category, Err: err}
}

// Error returns the category-prefixed message of the underlying error.
func (e *Error) Error() string {
	return string(e.Category) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *Error) Unwrap() error {
	return e.Err
}

// CategoryOf returns the category of err, walking the error chain.
// Errors without a category tag report CategorySystem.
func CategoryOf(err error) Category {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Category
	}
	return CategorySystem
}

// ExitError wraps an error with an exit code and optional suggestion for CLI
// use. It implements the error interface and supports unwrapping.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: pivot doctor",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
