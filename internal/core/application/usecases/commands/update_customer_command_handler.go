package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles customer contact updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the changes and persists the result.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	customerEntity, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerEntity.UpdateContact(
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(), cmd.PostalCode(),
	); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customerEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
