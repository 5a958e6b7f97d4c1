package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRoutesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRoutesQueryHandler

	customerID uuid.UUID
	driverID   uuid.UUID
	vehicleID  uuid.UUID
}

func (suite *GetRoutesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&deliveryrepo.DeliveryDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteDeliveryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRoutesQueryHandler(db)
}

func (suite *GetRoutesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRoutesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, drivers, vehicles, deliveries, routes, route_deliveries CASCADE").Error
	suite.Require().NoError(err)

	suite.customerID = uuid.New()
	err = suite.db.Create(&customerrepo.CustomerDTO{
		ID:           suite.customerID,
		Name:         "Distribuidora Sul",
		Email:        "vendas@distribuidorasul.example.com",
		TaxID:        "11222333000144",
		RegisteredAt: time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	suite.driverID = uuid.New()
	err = suite.db.Create(&driverrepo.DriverDTO{
		ID:              suite.driverID,
		Name:            "Ana Souza",
		TaxID:           "11122233344",
		LicenseCategory: "C",
		LicenseNumber:   "CNH-002",
		Email:           "ana@example.com",
		Status:          "available",
		RegisteredAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	suite.vehicleID = uuid.New()
	err = suite.db.Create(&vehiclerepo.VehicleDTO{
		ID:           suite.vehicleID,
		Plate:        "ABC1D23",
		Model:        "Daily",
		Brand:        "Iveco",
		Kind:         "truck",
		MaxCapacity:  120,
		Year:         2021,
		Status:       "available",
		RegisteredAt: time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetRoutesQueryHandlerTestSuite) seedRoute(name, status string, driverID, vehicleID *uuid.UUID) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&routerepo.RouteDTO{
		ID:               id,
		Name:             name,
		DriverID:         driverID,
		VehicleID:        vehicleID,
		RouteDate:        time.Now().UTC(),
		Status:           status,
		EstimatedKm:      50,
		EstimatedMinutes: 120,
		CreatedAt:        time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetRoutesQueryHandlerTestSuite) seedRouteDelivery(routeID uuid.UUID, position, requiredCapacity int) {
	deliveryID := uuid.New()
	err := suite.db.Create(&deliveryrepo.DeliveryDTO{
		ID:                 deliveryID,
		TrackingCode:       uuid.NewString()[:8],
		CustomerID:         suite.customerID,
		OriginAddress:      "Rua C 300",
		DestinationAddress: "Rua D 400",
		Status:             "pending",
		RequiredCapacity:   requiredCapacity,
		RequestedAt:        time.Now().UTC(),
		RouteID:            &routeID,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&routerepo.RouteDeliveryDTO{
		RouteID:          routeID,
		DeliveryID:       deliveryID,
		Position:         position,
		RequiredCapacity: requiredCapacity,
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetRoutesQuery(nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_AggregatesCapacityFromDeliveries() {
	routeID := suite.seedRoute("Rota Leste", "planned", &suite.driverID, &suite.vehicleID)
	suite.seedRouteDelivery(routeID, 0, 30)
	suite.seedRouteDelivery(routeID, 1, 45)

	query, err := queries.NewGetRoutesQuery(nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Rota Leste", result[0].Name)
	suite.Equal(2, result[0].DeliveryCount)
	suite.Equal(75, result[0].UsedCapacity)
	suite.Require().NotNil(result[0].MaxCapacity)
	suite.Equal(120, *result[0].MaxCapacity)
	suite.Require().NotNil(result[0].DriverName)
	suite.Equal("Ana Souza", *result[0].DriverName)
	suite.Require().NotNil(result[0].VehiclePlate)
	suite.Equal("ABC1D23", *result[0].VehiclePlate)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_RouteWithoutDriverOrVehicle() {
	suite.seedRoute("Rota Avulsa", "planned", nil, nil)

	query, err := queries.NewGetRoutesQuery(nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].DriverID)
	suite.Nil(result[0].DriverName)
	suite.Nil(result[0].VehiclePlate)
	suite.Nil(result[0].MaxCapacity)
	suite.Equal(0, result[0].UsedCapacity)
	suite.Equal(0, result[0].DeliveryCount)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	suite.seedRoute("Rota Planejada", "planned", nil, nil)
	suite.seedRoute("Rota Ativa", "in_progress", &suite.driverID, &suite.vehicleID)

	query, err := queries.NewGetRoutesQuery(nil, nil, nil, "in_progress")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Rota Ativa", result[0].Name)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_FiltersByDriver() {
	suite.seedRoute("Rota Sem Motorista", "planned", nil, nil)
	suite.seedRoute("Rota da Ana", "planned", &suite.driverID, nil)

	driverID, err := kernel.UUIDFromBytes(suite.driverID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetRoutesQuery(nil, &driverID, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Rota da Ana", result[0].Name)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_FiltersByVehicle() {
	suite.seedRoute("Rota Sem Veiculo", "planned", nil, nil)
	suite.seedRoute("Rota do Iveco", "planned", nil, &suite.vehicleID)

	vehicleID, err := kernel.UUIDFromBytes(suite.vehicleID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetRoutesQuery(nil, nil, &vehicleID, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Rota do Iveco", result[0].Name)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_UnknownRouteID_ReturnsNotFound() {
	missing := kernel.NewUUID()
	query, err := queries.NewGetRoutesQuery(&missing, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetRoutesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetRoutesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRoutesQueryHandlerTestSuite))
}
