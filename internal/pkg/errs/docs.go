// Package errs provides the structured error types shared by the suggestion service.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) used with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for a single-line message and Unwrap() returning the sentinel
//
// The package includes:
//   - ObjectNotFoundError: a repository could not find the requested row
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ValueIsRequiredError: a mandatory value is missing
package errs
