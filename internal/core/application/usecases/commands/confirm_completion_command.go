package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var (
	ErrConfirmCompletionCommandIsNotConstructed = errors.New(
		"ConfirmCompletionCommand must be created via NewConfirmCompletionCommand constructor",
	)
	ErrSideIsInvalid = errors.New("side must be poster or mover")
)

// Side identifies which party of a job is acting.
type Side int

const (
	SideUnknown Side = iota
	SidePoster
	SideMover
)

func (s Side) String() string {
	switch s {
	case SidePoster:
		return "poster"
	case SideMover:
		return "mover"
	default:
		return "unknown"
	}
}

// SideFromString parses a side name as it appears on the wire.
func SideFromString(s string) (Side, error) {
	switch s {
	case "poster":
		return SidePoster, nil
	case "mover":
		return SideMover, nil
	default:
		return SideUnknown, ErrSideIsInvalid
	}
}

// ConfirmCompletionCommand represents one party's confirmation that the job
// is done. Settlement fires once both sides have confirmed.
type ConfirmCompletionCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	side  Side

	guard guard.ConstructorGuard
}

// NewConfirmCompletionCommand creates a confirmation command for one side
// of the job.
func NewConfirmCompletionCommand(jobID kernel.UUID, side Side) (ConfirmCompletionCommand, error) {
	cmd := ConfirmCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setSide(side),
	); err != nil {
		return ConfirmCompletionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCompletionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCompletionCommandIsNotConstructed)
}

// JobID returns the job being confirmed.
func (c ConfirmCompletionCommand) JobID() kernel.UUID {
	return c.jobID
}

// Side returns which party is confirming.
func (c ConfirmCompletionCommand) Side() Side {
	return c.side
}

func (c *ConfirmCompletionCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ConfirmCompletionCommand) setSide(side Side) error {
	if side != SidePoster && side != SideMover {
		return ErrSideIsInvalid
	}

	c.side = side
	return nil
}
