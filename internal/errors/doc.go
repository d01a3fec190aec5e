// Package errors provides error handling conventions for the pivot CLI.
//
// This package defines the application-wide error taxonomy, an ExitError
// type for CLI exit code handling, and thin re-exports of the wrapping
// helpers so callers import a single errors package.
//
// # Categories
//
// Every hard failure in pivot carries a [Category] tag describing which
// subsystem concern it belongs to. The configuration pipeline only produces
// validation, filesystem, configuration, and parse categories; command and
// window categories belong to the process/WM layers built on top. Callers
// use [CategoryOf] to apply one surfacing policy across all of them:
//
//	switch errors.CategoryOf(err) {
//	case errors.CategoryParse, errors.CategoryValidation:
//	    // open the diagnostics view
//	}
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it via errors.As and exits with the code.
package errors
