package commands

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
)

// CreateDriverCommandHandler handles driver registration.
// Besides the driver aggregate it provisions a driver-role account with a
// username derived from the tax ID and the configured default password, and
// links the account back to the driver. Both writes share one transaction.
type CreateDriverCommandHandler struct {
	uowFactory      DriverUoWFactory
	defaultPassword string
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// defaultPassword is the initial credential for auto-provisioned accounts.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory, defaultPassword string) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory:      uowFactory,
		defaultPassword: defaultPassword,
	}
}

// Handle processes the driver creation command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	driverEntity, err := driver.NewDriver(
		cmd.DriverID(), cmd.Name(), cmd.TaxID(), cmd.LicenseCategory(),
		cmd.LicenseNumber(), cmd.Phone(), cmd.Email(), cmd.BirthDate(),
	)
	if err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(h.defaultPassword)
	if err != nil {
		return err
	}

	accountEntity, err := account.NewAccount(
		kernel.NewUUID(), driverEntity.AccountUsername(), cmd.Email(),
		passwordHash, account.RoleDriver,
	)
	if err != nil {
		return err
	}

	if err = driverEntity.LinkAccount(accountEntity.ID()); err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, accountEntity); err != nil {
		return err
	}
	if err = uow.DriverRepository().Add(ctx, driverEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
