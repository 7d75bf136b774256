package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrDisplayNameIsRequired = errors.New("display name is required")
	ErrPhoneIsRequired       = errors.New("phone is required")
)

// RegisterAccountCommand represents a request to create a marketplace account.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	displayName string
	phone       string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that the account ID is valid and name and phone are not empty.
func NewRegisterAccountCommand(accountID kernel.UUID, displayName string, phone string) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setDisplayName(displayName),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// DisplayName returns the user-facing name.
func (c RegisterAccountCommand) DisplayName() string {
	return c.displayName
}

// Phone returns the account's contact phone number.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setDisplayName(displayName string) error {
	if displayName == "" {
		return ErrDisplayNameIsRequired
	}

	c.displayName = displayName
	return nil
}

func (c *RegisterAccountCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
