package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles customer registration.
// Persists the new aggregate within a transaction; a duplicate email or
// tax ID surfaces as a conflict from the repository.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	customerEntity, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.TaxID(), cmd.Address(), cmd.PostalCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, customerEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
