// Package strike holds the disciplinary record appended when a conflict is
// reported against a user. Strikes are immutable and append-only; the strike
// policy counts them to decide on suspension.
package strike

import (
	"errors"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

// ErrStrikeIsNotConstructed is returned when using an improperly initialized Strike.
var ErrStrikeIsNotConstructed = errors.New("Strike must be created via NewStrike constructor")

// Strike records one disciplinary event: issuedBy reported againstID over jobID.
type Strike struct {
	id        kernel.UUID
	againstID kernel.UUID
	issuedBy  kernel.UUID
	jobID     kernel.UUID
	comment   string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewStrike creates a strike against a user. The comment is optional.
func NewStrike(
	id kernel.UUID,
	againstID kernel.UUID,
	issuedBy kernel.UUID,
	jobID kernel.UUID,
	comment string,
	now time.Time,
) (*Strike, error) {
	if err := errors.Join(
		id.Validate(),
		againstID.Validate(),
		issuedBy.Validate(),
		jobID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Strike{
		id:        id,
		againstID: againstID,
		issuedBy:  issuedBy,
		jobID:     jobID,
		comment:   comment,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreStrike reconstructs a strike from persisted state.
func RestoreStrike(
	id kernel.UUID,
	againstID kernel.UUID,
	issuedBy kernel.UUID,
	jobID kernel.UUID,
	comment string,
	createdAt time.Time,
) (*Strike, error) {
	return NewStrike(id, againstID, issuedBy, jobID, comment, createdAt)
}

// Validate ensures the strike was created through a constructor.
func (s *Strike) Validate() error {
	if s == nil {
		return ErrStrikeIsNotConstructed
	}
	return s.guard.Validate(ErrStrikeIsNotConstructed)
}

func (s *Strike) ID() kernel.UUID        { return s.id }
func (s *Strike) AgainstID() kernel.UUID { return s.againstID }
func (s *Strike) IssuedBy() kernel.UUID  { return s.issuedBy }
func (s *Strike) JobID() kernel.UUID     { return s.jobID }
func (s *Strike) Comment() string        { return s.comment }
func (s *Strike) CreatedAt() time.Time   { return s.createdAt }
