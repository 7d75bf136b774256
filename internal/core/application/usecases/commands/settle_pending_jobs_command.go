package commands

import (
	"errors"

	"haul/internal/pkg/guard"
)

var ErrSettlePendingJobsCommandIsNotConstructed = errors.New(
	"SettlePendingJobsCommand must be created via NewSettlePendingJobsCommand constructor",
)

// SettlePendingJobsCommand represents a request to retry settlement for
// every job where both sides confirmed but the capture has not succeeded.
// Issued by the periodic settlement sweep.
type SettlePendingJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewSettlePendingJobsCommand creates a settlement sweep command.
func NewSettlePendingJobsCommand() SettlePendingJobsCommand {
	return SettlePendingJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SettlePendingJobsCommand) Validate() error {
	return c.guard.Validate(ErrSettlePendingJobsCommandIsNotConstructed)
}
