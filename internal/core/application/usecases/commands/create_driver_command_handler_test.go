package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateDriverRepository struct{ mock.Mock }

func (m *MockCreateDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCreateDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCreateDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockCreateDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreateDriverAccountRepository struct{ mock.Mock }

func (m *MockCreateDriverAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCreateDriverAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCreateDriverAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockCreateDriverAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockCreateDriverAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreateDriverUoW struct{ mock.Mock }

func (m *MockCreateDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockCreateDriverUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockCreateDriverUoWFactory struct{ mock.Mock }

func (m *MockCreateDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(
		"Carlos Pereira", "123.456.789-00", driver.LicenseD,
		"98765432100", "+55 11 99876-5432", "carlos@transportes.com.br", nil,
	)
	require.NoError(t, err)

	driverRepo := new(MockCreateDriverRepository)
	accountRepo := new(MockCreateDriverAccountRepository)
	uow := new(MockCreateDriverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory, "senha-padrao-123")
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	addedAccount := accountRepo.Calls[0].Arguments[1].(*account.Account)
	addedDriver := driverRepo.Calls[0].Arguments[1].(*driver.Driver)

	assert.Equal(t, "motorista_12345678900", addedAccount.Username())
	assert.Equal(t, account.RoleDriver, addedAccount.Role())
	assert.True(t, auth.CheckPassword(addedAccount.PasswordHash(), "senha-padrao-123"))

	require.NotNil(t, addedDriver.AccountID())
	assert.True(t, addedDriver.AccountID().IsEqual(addedAccount.ID()))
	assert.Equal(t, driver.StatusAvailable, addedDriver.Status())
}

func TestCreateDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDriverCommand{} // not constructed properly

	factory := new(MockCreateDriverUoWFactory)
	handler := commands.NewCreateDriverCommandHandler(factory, "senha-padrao-123")
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDriverCommandHandler_Handle_AccountAddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(
		"Carlos Pereira", "123.456.789-00", driver.LicenseD,
		"98765432100", "", "carlos@transportes.com.br", nil,
	)
	require.NoError(t, err)

	accountRepo := new(MockCreateDriverAccountRepository)
	uow := new(MockCreateDriverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).
			Return(errs.NewObjectAlreadyExistsError("username", "motorista_12345678900")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory, "senha-padrao-123")
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "DriverRepository")
}
