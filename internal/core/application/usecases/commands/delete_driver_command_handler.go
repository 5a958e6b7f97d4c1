package commands

import (
	"context"
)

// DeleteDriverCommandHandler handles driver removal, including the linked
// login account when one was provisioned.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the driver and its linked account in one transaction.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = driverRepo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if accountID := driverEntity.AccountID(); accountID != nil {
		if err = uow.AccountRepository().Delete(ctx, *accountID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
