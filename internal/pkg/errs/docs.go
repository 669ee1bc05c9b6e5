// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the order core:
//   - ObjectNotFoundError: a referenced object (typically an order) does not exist
//   - ValueIsInvalidError: a provided value is malformed
//   - ValueIsRequiredError: a required value is missing
//   - InvalidTransitionError: an order lifecycle change violates the transition rules
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the transport
// layer maps them to HTTP status codes.
package errs
