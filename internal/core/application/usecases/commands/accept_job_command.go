package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a mover's request to take an open job.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a mover to accept a job.
func NewAcceptJobCommand(jobID kernel.UUID, moverID kernel.UUID) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setMoverID(moverID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the job being accepted.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// MoverID returns the account accepting the job.
func (c AcceptJobCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}
