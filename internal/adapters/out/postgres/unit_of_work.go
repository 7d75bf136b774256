// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains a list of aggregates affected by a business transaction
// and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.JobRepository().Add(ctx, job); err != nil {
//	    return err
//	}
//	if err := uow.AccountRepository().Update(ctx, poster); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// operations must use separate instances.
package postgres

import (
	"context"

	"haul/internal/adapters/out/postgres/accountrepo"
	"haul/internal/adapters/out/postgres/jobrepo"
	"haul/internal/adapters/out/postgres/strikerepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// The factory ensures each business operation gets a fresh unit of work with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Repeated calls on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository provides access to job persistence operations within the unit of work.
// Operations execute within the current transaction if one is active, otherwise
// they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return jobrepo.NewGormJobRepository(db, uow)
}

// AccountRepository provides access to account persistence operations within the unit of work.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return accountrepo.NewGormAccountRepository(db, uow)
}

// StrikeRepository provides access to strike persistence operations within the unit of work.
func (uow *GormUnitOfWork) StrikeRepository() ports.StrikeRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return strikerepo.NewGormStrikeRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repository implementations call this when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
