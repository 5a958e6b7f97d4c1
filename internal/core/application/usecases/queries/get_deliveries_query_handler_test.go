package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
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

type GetDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDeliveriesQueryHandler

	customerID uuid.UUID
	driverID   uuid.UUID
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupSuite() {
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
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusHistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveriesQueryHandler(db)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, drivers, deliveries, delivery_status_history CASCADE").Error
	suite.Require().NoError(err)

	suite.customerID = uuid.New()
	err = suite.db.Create(&customerrepo.CustomerDTO{
		ID:           suite.customerID,
		Name:         "Mercado Central",
		Email:        "contato@mercadocentral.example.com",
		TaxID:        "12345678000190",
		RegisteredAt: time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	suite.driverID = uuid.New()
	err = suite.db.Create(&driverrepo.DriverDTO{
		ID:              suite.driverID,
		Name:            "Carlos Pereira",
		TaxID:           "98765432100",
		LicenseCategory: "B",
		LicenseNumber:   "CNH-001",
		Email:           "carlos@example.com",
		Status:          "available",
		RegisteredAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) seedDelivery(code, status string, driverID *uuid.UUID, requestedAt time.Time) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&deliveryrepo.DeliveryDTO{
		ID:                 id,
		TrackingCode:       code,
		CustomerID:         suite.customerID,
		OriginAddress:      "Rua A 100",
		DestinationAddress: "Rua B 200",
		OriginPostal:       "01000-000",
		DestinationPostal:  "13000-000",
		Status:             status,
		RequiredCapacity:   25,
		FreightValue:       180.50,
		RequestedAt:        requestedAt,
		DriverID:           driverID,
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_ReturnsDeliveriesNewestFirst() {
	older := time.Now().UTC().Add(-2 * time.Hour)
	newer := time.Now().UTC()
	suite.seedDelivery("AAAA1111", "pending", nil, older)
	newestID := suite.seedDelivery("BBBB2222", "pending", nil, newer)

	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newestID.String(), result[0].ID.String())
	suite.Equal("Mercado Central", result[0].CustomerName)
	suite.Equal("BBBB2222", result[0].TrackingCode)
	suite.Nil(result[0].DriverName)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	now := time.Now().UTC()
	suite.seedDelivery("CCCC3333", "pending", nil, now)
	suite.seedDelivery("DDDD4444", "in_transit", &suite.driverID, now)

	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil, nil, "in_transit")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("in_transit", result[0].Status)
	suite.Require().NotNil(result[0].DriverName)
	suite.Equal("Carlos Pereira", *result[0].DriverName)
	suite.Require().NotNil(result[0].DriverID)
	suite.Equal(suite.driverID.String(), result[0].DriverID.String())
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByDriver() {
	now := time.Now().UTC()
	suite.seedDelivery("EEEE5555", "pending", nil, now)
	suite.seedDelivery("FFFF6666", "in_transit", &suite.driverID, now)

	driverID, err := kernel.UUIDFromBytes(suite.driverID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveriesQuery(nil, nil, &driverID, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("FFFF6666", result[0].TrackingCode)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_UnknownDeliveryID_ReturnsNotFound() {
	missing := kernel.NewUUID()
	query, err := queries.NewGetDeliveriesQuery(&missing, nil, nil, nil, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetDeliveriesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveriesQueryHandlerTestSuite))
}
