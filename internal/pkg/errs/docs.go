// Package errs provides standardized error types for the meal-order tracking
// service. Every error type follows the same pattern: a sentinel error variable
// for classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, an Error() method for
// formatting, and an Unwrap() method returning the sentinel.
//
// The package covers the common failure scenarios of the application:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsOutOfRangeError: a numeric value fell outside its bounds
//   - ValueIsRequiredError: a required value was not supplied
//   - VersionIsInvalidError: an aggregate version failed validation
//
// Centralizing the error vocabulary keeps messages consistent across the
// domain model, use cases, and adapters, and lets callers branch on the
// sentinel instead of parsing message text.
package errs
