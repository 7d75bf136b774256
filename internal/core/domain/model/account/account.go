package account

import (
	"errors"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

// Domain errors for account operations.
var (
	// ErrDisplayNameIsRequired is returned when creating an account without a display name.
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("display name")
	// ErrPhoneIsRequired is returned when creating an account without a contact phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is the per-user ledger state aggregate. It tracks whether the user
// is free to take part in a new job (available), whether the user is suspended
// by the strike policy, and the opaque payment-processor identifiers for the
// paying side (payerRef) and the receiving side (payeeRef).
//
// Invariants:
//   - available is false exactly while the user is the poster or the accepted
//     mover of a not-yet-settled job; at most one job holds it false at a time.
//   - A suspended account can neither post nor accept jobs.
//   - payerRef and payeeRef are each set at most once and never overwritten.
//   - Attaching a payeeRef marks the account as a payout-capable mover.
//
// The aggregate is only mutated through job lifecycle transitions and the
// strike policy; it performs no external calls itself.
type Account struct {
	id          kernel.UUID
	displayName string
	phone       string
	mover       bool
	payerRef    string
	payeeRef    string
	available   bool
	suspended   bool
	suspendedAt *time.Time
	guard       guard.ConstructorGuard
}

// NewAccount creates a fresh account: available for work, not suspended, not
// yet onboarded with the payment processor.
func NewAccount(id kernel.UUID, displayName string, phone string) (*Account, error) {
	acc := &Account{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setDisplayName(displayName),
		acc.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount reconstructs an account aggregate from persisted state.
func RestoreAccount(
	id kernel.UUID,
	displayName string,
	phone string,
	mover bool,
	payerRef string,
	payeeRef string,
	available bool,
	suspended bool,
	suspendedAt *time.Time,
) (*Account, error) {
	acc, err := NewAccount(id, displayName, phone)
	if err != nil {
		return nil, err
	}

	acc.mover = mover
	acc.payerRef = payerRef
	acc.payeeRef = payeeRef
	acc.available = available
	acc.suspended = suspended
	acc.suspendedAt = suspendedAt

	return acc, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// DisplayName returns the user-facing name.
func (a *Account) DisplayName() string {
	return a.displayName
}

// Phone returns the account's contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// IsMover reports whether the account is onboarded as a payout-capable worker.
func (a *Account) IsMover() bool {
	return a.mover
}

// PayerRef returns the processor-side payer identifier, or "" if not attached.
func (a *Account) PayerRef() string {
	return a.payerRef
}

// PayeeRef returns the processor-side payee identifier, or "" if not attached.
func (a *Account) PayeeRef() string {
	return a.payeeRef
}

// IsAvailable reports whether the account is free to post or accept a job.
func (a *Account) IsAvailable() bool {
	return a.available
}

// IsSuspended reports whether the account is suspended by the strike policy.
func (a *Account) IsSuspended() bool {
	return a.suspended
}

// SuspendedAt returns when the current suspension started, or nil.
func (a *Account) SuspendedAt() *time.Time {
	return a.suspendedAt
}

// Engage claims the account for a job. It fails with a PolicyViolation when
// the account is suspended or already engaged in another job.
func (a *Account) Engage() error {
	if a.suspended {
		return errs.NewPolicyViolationError("account is suspended")
	}
	if !a.available {
		return errs.NewPolicyViolationError("account is already engaged in a job")
	}

	a.available = false
	return nil
}

// Release frees the account after its side of a job is confirmed done or the
// job falls into conflict. Releasing an already-free account is a no-op.
func (a *Account) Release() {
	a.available = true
}

// AttachPayerRef records the processor payer identifier. The reference is
// set at most once; re-attaching the same value is a no-op, attaching a
// different one is a PolicyViolation.
func (a *Account) AttachPayerRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("payer reference")
	}
	if a.payerRef == ref {
		return nil
	}
	if a.payerRef != "" {
		return errs.NewPolicyViolationError("payer reference is already attached")
	}

	a.payerRef = ref
	return nil
}

// AttachPayeeRef records the processor payee identifier and marks the account
// as a mover. Same set-once semantics as AttachPayerRef.
func (a *Account) AttachPayeeRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("payee reference")
	}
	if a.payeeRef == ref {
		return nil
	}
	if a.payeeRef != "" {
		return errs.NewPolicyViolationError("payee reference is already attached")
	}

	a.payeeRef = ref
	a.mover = true
	return nil
}

// Suspend bans the account: it can no longer post or accept jobs. Idempotent;
// the first suspension time is kept.
func (a *Account) Suspend(now time.Time) {
	if a.suspended {
		return
	}

	a.suspended = true
	a.available = false
	a.suspendedAt = &now
}

// Reinstate lifts a suspension. Idempotent.
func (a *Account) Reinstate() {
	a.suspended = false
	a.suspendedAt = nil
	a.available = true
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setDisplayName(name string) error {
	if name == "" {
		return ErrDisplayNameIsRequired
	}
	a.displayName = name
	return nil
}

func (a *Account) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	a.phone = phone
	return nil
}
