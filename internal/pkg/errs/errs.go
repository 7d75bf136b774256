package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	// Lifecycle taxonomy.
	ErrPolicyViolation   = errors.New("policy violation")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrGatewayFailure    = errors.New("gateway failure")
	ErrSettlementFailed  = errors.New("settlement failed")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports a missing object by parameter name and ID.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports an invalid value for a named parameter.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PolicyViolationError reports a lifecycle precondition that was not met:
// a suspended actor, an unavailable actor, self-dealing. No state is mutated
// when one of these is returned.
type PolicyViolationError struct {
	Reason string
	Cause  error
}

func NewPolicyViolationError(reason string) *PolicyViolationError {
	return &PolicyViolationError{Reason: reason}
}

func NewPolicyViolationErrorWithCause(reason string, cause error) *PolicyViolationError {
	return &PolicyViolationError{Reason: reason, Cause: cause}
}

func (e *PolicyViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPolicyViolation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPolicyViolation, e.Reason)
}

func (e *PolicyViolationError) Unwrap() error {
	return ErrPolicyViolation
}

// InvalidTransitionError reports an operation attempted in a lifecycle state
// that does not permit it.
type InvalidTransitionError struct {
	Operation string
	Status    string
	Cause     error
}

func NewInvalidTransitionError(operation, status string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status}
}

func NewInvalidTransitionErrorWithCause(operation, status string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed in status %s (cause: %v)",
			ErrInvalidTransition, e.Operation, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not allowed in status %s", ErrInvalidTransition, e.Operation, e.Status)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// GatewayError reports a failed or timed-out call to an external collaborator
// (ledger gateway, geocoder, notifier, identity service). The owning transition
// is rolled back when one of these is returned.
type GatewayError struct {
	Gateway string
	Cause   error
}

func NewGatewayError(gateway string, cause error) *GatewayError {
	return &GatewayError{Gateway: gateway, Cause: cause}
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrGatewayFailure, e.Gateway, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrGatewayFailure, e.Gateway)
}

func (e *GatewayError) Unwrap() error {
	return ErrGatewayFailure
}

// SettlementError reports a settlement attempt that could not capture the
// job's hold. The job keeps its both-confirmed state and the settlement is
// eligible for retry.
type SettlementError struct {
	HoldRef string
	Cause   error
}

func NewSettlementError(holdRef string, cause error) *SettlementError {
	return &SettlementError{HoldRef: holdRef, Cause: cause}
}

func (e *SettlementError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: hold %s (cause: %v)", ErrSettlementFailed, e.HoldRef, e.Cause)
	}
	return fmt.Sprintf("%s: hold %s", ErrSettlementFailed, e.HoldRef)
}

func (e *SettlementError) Unwrap() error {
	return ErrSettlementFailed
}
