// Package errs provides standardized error types for the haul application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common validation scenarios
// (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
// ObjectNotFoundError) and for the job lifecycle taxonomy:
//
//   - PolicyViolationError: a precondition was not met (suspended actor,
//     unavailable actor, self-dealing); no state is mutated.
//   - InvalidTransitionError: an operation was attempted in a state that does
//     not permit it; no state is mutated.
//   - GatewayError: an external collaborator call failed or timed out; the
//     owning transition is rolled back.
//   - SettlementError: a capture attempt failed; the job stays in its
//     both-confirmed state and the settlement may be retried.
//
// Each error type follows a consistent pattern: a sentinel error variable,
// a struct type with fields for error details, constructor functions with and
// without cause, an Error() method, and an Unwrap() method so errors.Is can
// classify errors against the sentinels.
package errs
