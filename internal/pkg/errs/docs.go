// Package errs provides standardized error types for the order tracking service.
// Every error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type carrying the offending parameter
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter relies on that to pick a status code.
package errs
