package commands

import (
	"context"
	"log/slog"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"
)

// UnbanAccountsCommandHandler lifts suspensions older than the configured
// ban duration and reactivates the affected logins.
type UnbanAccountsCommandHandler struct {
	uowFactory  AccountUoWFactory
	identity    ports.IdentityService
	banDuration time.Duration
	logger      *slog.Logger
}

// NewUnbanAccountsCommandHandler creates a handler for the unban sweep.
func NewUnbanAccountsCommandHandler(
	uowFactory AccountUoWFactory,
	identity ports.IdentityService,
	banDuration time.Duration,
	logger *slog.Logger,
) UnbanAccountsCommandHandler {
	return UnbanAccountsCommandHandler{
		uowFactory:  uowFactory,
		identity:    identity,
		banDuration: banDuration,
		logger:      logger.With("component", "unban_accounts"),
	}
}

// Handle processes the unban sweep command. Reinstatements are committed
// first; login reactivation runs afterwards, best effort, so an identity
// outage delays reactivation but never re-suspends anyone.
func (h *UnbanAccountsCommandHandler) Handle(ctx context.Context, cmd UnbanAccountsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	cutoff := time.Now().UTC().Add(-h.banDuration)

	expired, err := accountRepo.GetAllSuspendedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	reinstated := make([]kernel.UUID, 0, len(expired))
	for _, acc := range expired {
		acc.Reinstate()
		if err = accountRepo.Update(ctx, acc); err != nil {
			return err
		}
		reinstated = append(reinstated, acc.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, accountID := range reinstated {
		if err = h.identity.Activate(ctx, accountID); err != nil {
			h.logger.WarnContext(ctx, "login reactivation failed",
				"account_id", accountID.String(), "error", err)
		}
	}

	return nil
}
