// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ValueIsOutOfRangeError: For when a value lies outside of its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - QuantityBelowMinimumError: For orders under a product's minimum quantity
//   - AccessDeniedError: For operations on resources outside of the caller's scope
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// The HTTP adapter maps the sentinels to status codes in a single place.
package errs
