package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var ErrSettleJobCommandIsNotConstructed = errors.New(
	"SettleJobCommand must be created via NewSettleJobCommand constructor",
)

// SettleJobCommand represents a request to capture the payment hold of a
// fully confirmed job and mark it completed. Safe to retry: an already
// settled job is a no-op, an already captured hold is finalized without a
// second charge.
type SettleJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettleJobCommand creates a settlement command for a job.
func NewSettleJobCommand(jobID kernel.UUID) (SettleJobCommand, error) {
	cmd := SettleJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return SettleJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleJobCommand) Validate() error {
	return c.guard.Validate(ErrSettleJobCommandIsNotConstructed)
}

// JobID returns the job to settle.
func (c SettleJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *SettleJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
