package commands

import (
	"errors"

	"haul/internal/pkg/guard"
)

var ErrUnbanAccountsCommandIsNotConstructed = errors.New(
	"UnbanAccountsCommand must be created via NewUnbanAccountsCommand constructor",
)

// UnbanAccountsCommand represents a request to lift expired suspensions.
// Issued by the periodic unban sweep.
type UnbanAccountsCommand struct {
	guard guard.ConstructorGuard
}

// NewUnbanAccountsCommand creates an unban sweep command.
func NewUnbanAccountsCommand() UnbanAccountsCommand {
	return UnbanAccountsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UnbanAccountsCommand) Validate() error {
	return c.guard.Validate(ErrUnbanAccountsCommandIsNotConstructed)
}
