package commands_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateCustomerRepository struct{ mock.Mock }

func (m *MockCreateCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCreateCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCreateCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCreateCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreateCustomerUoW struct{ mock.Mock }

func (m *MockCreateCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCreateCustomerUoWFactory struct{ mock.Mock }

func (m *MockCreateCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		"Padaria Central", "contato@padariacentral.com.br", "+55 11 91234-5678",
		"12.345.678/0001-90", "Rua das Flores 100", "01310-100",
	)
	require.NoError(t, err)

	customerRepo := new(MockCreateCustomerRepository)
	uow := new(MockCreateCustomerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	addCall := customerRepo.Calls[0]
	added := addCall.Arguments[1].(*customer.Customer)
	assert.Equal(t, cmd.CustomerID(), added.ID())
	assert.Equal(t, "Padaria Central", added.Name())
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCustomerCommand{} // not constructed properly

	factory := new(MockCreateCustomerUoWFactory)
	handler := commands.NewCreateCustomerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_DuplicateTaxID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		"Padaria Central", "contato@padariacentral.com.br", "+55 11 91234-5678",
		"12.345.678/0001-90", "Rua das Flores 100", "01310-100",
	)
	require.NoError(t, err)

	customerRepo := new(MockCreateCustomerRepository)
	uow := new(MockCreateCustomerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Return(errs.NewObjectAlreadyExistsError("taxId", "12.345.678/0001-90")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateCustomerCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		"Padaria Central", "contato@padariacentral.com.br", "",
		"12.345.678/0001-90", "", "",
	)
	require.NoError(t, err)

	uow := new(MockCreateCustomerUoW)
	factory := new(MockCreateCustomerUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
