package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var ErrReportConflictCommandIsNotConstructed = errors.New(
	"ReportConflictCommand must be created via NewReportConflictCommand constructor",
)

// ReportConflictCommand represents a dispute raised by one party of a job
// against the other. The job transitions to the terminal Conflict state and
// a strike is recorded against the named party.
type ReportConflictCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	reporterID kernel.UUID
	againstID  kernel.UUID
	comment    string

	guard guard.ConstructorGuard
}

// NewReportConflictCommand creates a conflict report. The comment is optional.
func NewReportConflictCommand(
	jobID kernel.UUID,
	reporterID kernel.UUID,
	againstID kernel.UUID,
	comment string,
) (ReportConflictCommand, error) {
	cmd := ReportConflictCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setReporterID(reporterID),
		cmd.setAgainstID(againstID),
	); err != nil {
		return ReportConflictCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportConflictCommand) Validate() error {
	return c.guard.Validate(ErrReportConflictCommandIsNotConstructed)
}

// JobID returns the disputed job.
func (c ReportConflictCommand) JobID() kernel.UUID {
	return c.jobID
}

// ReporterID returns the party raising the dispute.
func (c ReportConflictCommand) ReporterID() kernel.UUID {
	return c.reporterID
}

// AgainstID returns the party the strike is recorded against.
func (c ReportConflictCommand) AgainstID() kernel.UUID {
	return c.againstID
}

// Comment returns the reporter's free-text description of the dispute.
func (c ReportConflictCommand) Comment() string {
	return c.comment
}

func (c *ReportConflictCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ReportConflictCommand) setReporterID(reporterID kernel.UUID) error {
	if err := reporterID.Validate(); err != nil {
		return err
	}

	c.reporterID = reporterID
	return nil
}

func (c *ReportConflictCommand) setAgainstID(againstID kernel.UUID) error {
	if err := againstID.Validate(); err != nil {
		return err
	}

	c.againstID = againstID
	return nil
}
