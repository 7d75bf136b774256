package commands

import (
	"context"

	"haul/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles the business logic for account
// registration. New accounts start available for work with no payment
// profile attached.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	acc, err := account.NewAccount(cmd.AccountID(), cmd.DisplayName(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
