package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/jobs"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one unit-of-work factory
// over one gorm connection, handed to every handler through the narrow
// factory interface it declares.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverVehicleUoWFactory() commands.DriverVehicleUoWFactory {
	return FuncDriverVehicleUoWFactory(func() commands.DriverVehicleUoW {
		return c.uowFactory.Create()
	})
}

// CreateCommandHandlers builds the full write-side handler set.
func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		CreateCustomer: commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()),
		DeleteCustomer: commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()),

		CreateDriver:  commands.NewCreateDriverCommandHandler(c.driverUoWFactory(), c.config.DefaultDriverPassword),
		UpdateDriver:  commands.NewUpdateDriverCommandHandler(c.driverUoWFactory()),
		DeleteDriver:  commands.NewDeleteDriverCommandHandler(c.driverUoWFactory()),
		AssignVehicle: commands.NewAssignVehicleCommandHandler(c.driverVehicleUoWFactory()),

		CreateVehicle: commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory()),
		UpdateVehicle: commands.NewUpdateVehicleCommandHandler(c.vehicleUoWFactory()),
		DeleteVehicle: commands.NewDeleteVehicleCommandHandler(c.vehicleUoWFactory()),

		CreateDelivery:       commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory()),
		UpdateDelivery:       commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory()),
		DeleteDelivery:       commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory()),
		AssignDriver:         commands.NewAssignDriverCommandHandler(c.deliveryUoWFactory()),
		UpdateDeliveryStatus: commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory()),

		CreateRoute:             commands.NewCreateRouteCommandHandler(c.routeUoWFactory()),
		UpdateRoute:             commands.NewUpdateRouteCommandHandler(c.routeUoWFactory()),
		DeleteRoute:             commands.NewDeleteRouteCommandHandler(c.routeUoWFactory()),
		AddDeliveryToRoute:      commands.NewAddDeliveryToRouteCommandHandler(c.routeUoWFactory()),
		RemoveDeliveryFromRoute: commands.NewRemoveDeliveryFromRouteCommandHandler(c.routeUoWFactory()),
		StartRoute:              commands.NewStartRouteCommandHandler(c.routeUoWFactory()),
		CompleteRoute:           commands.NewCompleteRouteCommandHandler(c.routeUoWFactory()),
		CancelRoute:             commands.NewCancelRouteCommandHandler(c.routeUoWFactory()),
	}
}

// CreateQueryHandlers builds the full read-side handler set.
func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetCustomers:        queries.NewGetCustomersQueryHandler(c.gormDB),
		GetDrivers:          queries.NewGetDriversQueryHandler(c.gormDB),
		GetVehicles:         queries.NewGetVehiclesQueryHandler(c.gormDB),
		GetDeliveries:       queries.NewGetDeliveriesQueryHandler(c.gormDB),
		GetRoutes:           queries.NewGetRoutesQueryHandler(c.gormDB),
		GetDeliveryHistory:  queries.NewGetDeliveryHistoryQueryHandler(c.gormDB),
		GetDriverHistory:    queries.NewGetDriverHistoryQueryHandler(c.gormDB),
		GetDriverDashboard:  queries.NewGetDriverDashboardQueryHandler(c.gormDB),
		GetOperationsReport: queries.NewGetOperationsReportQueryHandler(c.gormDB),
		GetAccountProfile:   queries.NewGetAccountProfileQueryHandler(c.gormDB),
		TrackDelivery:       queries.NewTrackDeliveryQueryHandler(c.gormDB),
	}
}

// CreateTokenService builds the JWT service from config. TTLs use Go
// duration syntax; empty values fall back to the service defaults.
func (c *CompositionRoot) CreateTokenService() (*auth.TokenService, error) {
	return auth.NewTokenService(
		c.config.JWTSecret,
		c.config.JWTIssuer,
		parseDuration(c.config.JWTAccessTTL),
		parseDuration(c.config.JWTRefreshTTL),
	)
}

// CreateHTTPServer builds the HTTP server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer(tokens *auth.TokenService) *httpin.Server {
	return httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), tokens)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.config.CapacityJobCronSpec, logger)
}

// EnsureAdminAccount provisions the configured back-office account on first
// start. An existing account with the same username is left untouched; no
// configured credentials means no account is created.
func (c *CompositionRoot) EnsureAdminAccount(ctx context.Context) error {
	if c.config.AdminUsername == "" || c.config.AdminPassword == "" {
		return nil
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.AccountRepository().GetByUsername(ctx, c.config.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	hash, err := auth.HashPassword(c.config.AdminPassword)
	if err != nil {
		return err
	}

	admin, err := account.NewAccount(
		kernel.NewUUID(), c.config.AdminUsername, c.config.AdminEmail, hash, account.RoleAdmin)
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, admin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func parseDuration(raw string) time.Duration {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return parsed
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncDriverVehicleUoWFactory func() commands.DriverVehicleUoW

func (f FuncDriverVehicleUoWFactory) Create() commands.DriverVehicleUoW {
	return f()
}
