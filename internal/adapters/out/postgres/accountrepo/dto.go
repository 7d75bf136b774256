// Package accountrepo provides data transfer objects and mapping functions for account persistence.
package accountrepo

import (
	"time"

	"haul/internal/core/domain/model/account"
	"haul/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName string
	Phone       string
	Mover       bool
	PayerRef    string
	PayeeRef    string
	Available   bool
	Suspended   bool `gorm:"index"`
	SuspendedAt *time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:          aggregate.ID().Bytes(),
		DisplayName: aggregate.DisplayName(),
		Phone:       aggregate.Phone(),
		Mover:       aggregate.IsMover(),
		PayerRef:    aggregate.PayerRef(),
		PayeeRef:    aggregate.PayeeRef(),
		Available:   aggregate.IsAvailable(),
		Suspended:   aggregate.IsSuspended(),
		SuspendedAt: aggregate.SuspendedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.DisplayName,
		dto.Phone,
		dto.Mover,
		dto.PayerRef,
		dto.PayeeRef,
		dto.Available,
		dto.Suspended,
		dto.SuspendedAt,
	)
}
