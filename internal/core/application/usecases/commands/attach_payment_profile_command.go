package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var (
	ErrAttachPaymentProfileCommandIsNotConstructed = errors.New(
		"AttachPaymentProfileCommand must be created via NewAttachPaymentProfileCommand constructor",
	)
	ErrPaymentRefIsRequired = errors.New("at least one of payer ref and payee ref is required")
)

// AttachPaymentProfileCommand represents a request to record the payment
// processor identifiers for an account: the payer reference obtained during
// funding-source registration, the payee reference during payout onboarding.
// Either or both may be supplied; each is set at most once on the account.
type AttachPaymentProfileCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	payerRef  string
	payeeRef  string

	guard guard.ConstructorGuard
}

// NewAttachPaymentProfileCommand creates a command to attach processor
// identifiers. At least one reference must be non-empty.
func NewAttachPaymentProfileCommand(accountID kernel.UUID, payerRef string, payeeRef string) (AttachPaymentProfileCommand, error) {
	cmd := AttachPaymentProfileCommand{
		payerRef: payerRef,
		payeeRef: payeeRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.validateRefs(),
	); err != nil {
		return AttachPaymentProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPaymentProfileCommand) Validate() error {
	return c.guard.Validate(ErrAttachPaymentProfileCommandIsNotConstructed)
}

// AccountID returns the account to attach the profile to.
func (c AttachPaymentProfileCommand) AccountID() kernel.UUID {
	return c.accountID
}

// PayerRef returns the processor payer identifier, or "" if not supplied.
func (c AttachPaymentProfileCommand) PayerRef() string {
	return c.payerRef
}

// PayeeRef returns the processor payee identifier, or "" if not supplied.
func (c AttachPaymentProfileCommand) PayeeRef() string {
	return c.payeeRef
}

func (c *AttachPaymentProfileCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *AttachPaymentProfileCommand) validateRefs() error {
	if c.payerRef == "" && c.payeeRef == "" {
		return ErrPaymentRefIsRequired
	}

	return nil
}
