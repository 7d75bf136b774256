// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"haul/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// StrikeRepoFactory provides access to the strike repository within a transaction.
	StrikeRepoFactory interface {
		StrikeRepository() ports.StrikeRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// JobAccountUoW manages transactions spanning job and account aggregates.
	// Used by the lifecycle transitions, which always toggle account
	// availability together with the job flags.
	JobAccountUoW interface {
		TxManager
		JobRepoFactory
		AccountRepoFactory
	}

	// JobAccountUoWFactory creates new job/account unit of work instances.
	JobAccountUoWFactory interface {
		Create() JobAccountUoW
	}

	// UoW manages transactions across all three aggregates. Used by the
	// conflict path, which touches the job, both accounts, and the strike log.
	UoW interface {
		TxManager
		JobRepoFactory
		AccountRepoFactory
		StrikeRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
