package commands

import (
	"context"
)

// AttachPaymentProfileCommandHandler records processor identifiers on an
// account. Attaching a payee reference also marks the account as a mover.
type AttachPaymentProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAttachPaymentProfileCommandHandler creates a handler for payment
// profile attachment.
func NewAttachPaymentProfileCommandHandler(uowFactory AccountUoWFactory) AttachPaymentProfileCommandHandler {
	return AttachPaymentProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment profile attachment command. Each reference is
// set at most once; attempting to overwrite an existing one fails with a
// policy violation from the aggregate.
func (h *AttachPaymentProfileCommandHandler) Handle(ctx context.Context, cmd AttachPaymentProfileCommand) error {
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
	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if ref := cmd.PayerRef(); ref != "" {
		if err = acc.AttachPayerRef(ref); err != nil {
			return err
		}
	}

	if ref := cmd.PayeeRef(); ref != "" {
		if err = acc.AttachPayeeRef(ref); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
