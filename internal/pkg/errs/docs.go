// Package errs provides standardized error types for the status workflow service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the validation and workflow error kinds:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when a subject cannot be found
//   - InvalidTransitionError: for status changes outside the taxonomy
//   - UnauthorizedError: for actors lacking role or ownership
//   - ConcurrentModificationError: for failed optimistic version checks
//   - StorageFailureError: for unexpected persistence errors
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// Errors are always returned, never thrown past a component boundary; the HTTP
// layer maps each sentinel to an appropriate status code. ConcurrentModification
// is the only kind that is safe to retry.
package errs
