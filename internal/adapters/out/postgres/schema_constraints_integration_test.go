package postgres_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SchemaConstraintsIntegrationTestSuite verifies the referential actions and
// unique indexes the migrated schema carries: removing a customer takes its
// deliveries and their history along, removing a delivery takes its history
// and route slots, while driver, vehicle, route and account references on
// surviving rows are cleared instead.
type SchemaConstraintsIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *SchemaConstraintsIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusHistoryDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteDeliveryDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *SchemaConstraintsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SchemaConstraintsIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE customers, drivers, vehicles, deliveries, delivery_status_history, routes, route_deliveries, accounts",
	).Error
	suite.Require().NoError(err)
}

func (suite *SchemaConstraintsIntegrationTestSuite) seedCustomer() uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&customerrepo.CustomerDTO{
		ID:           id,
		Name:         "Mercado Central",
		Email:        id.String() + "@example.com",
		TaxID:        id.String(),
		RegisteredAt: time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *SchemaConstraintsIntegrationTestSuite) seedDriver(licenseNumber, email string) (uuid.UUID, error) {
	id := uuid.New()
	return id, suite.db.Create(&driverrepo.DriverDTO{
		ID:              id,
		Name:            "Carlos Pereira",
		TaxID:           id.String(),
		LicenseCategory: "B",
		LicenseNumber:   licenseNumber,
		Email:           email,
		Status:          "available",
		RegisteredAt:    time.Now().UTC(),
	}).Error
}

func (suite *SchemaConstraintsIntegrationTestSuite) seedDelivery(
	customerID uuid.UUID, driverID, routeID *uuid.UUID,
) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&deliveryrepo.DeliveryDTO{
		ID:                 id,
		TrackingCode:       uuid.NewString()[:8],
		CustomerID:         customerID,
		OriginAddress:      "Rua A 1",
		DestinationAddress: "Rua B 2",
		Status:             "pending",
		RequiredCapacity:   10,
		RequestedAt:        time.Now().UTC(),
		DriverID:           driverID,
		RouteID:            routeID,
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *SchemaConstraintsIntegrationTestSuite) seedHistory(deliveryID uuid.UUID, driverID *uuid.UUID) {
	err := suite.db.Create(&deliveryrepo.StatusHistoryDTO{
		ID:             uuid.New(),
		DeliveryID:     deliveryID,
		PreviousStatus: "pending",
		NewStatus:      "in_transit",
		DriverID:       driverID,
		RecordedAt:     time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
}

func (suite *SchemaConstraintsIntegrationTestSuite) seedRoute(driverID, vehicleID *uuid.UUID) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&routerepo.RouteDTO{
		ID:        id,
		Name:      "Rota Centro",
		DriverID:  driverID,
		VehicleID: vehicleID,
		RouteDate: time.Now().UTC(),
		Status:    "planned",
		CreatedAt: time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *SchemaConstraintsIntegrationTestSuite) countRows(model any) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDriverLicenseNumberIsUnique() {
	_, err := suite.seedDriver("CNH-001", "carlos@example.com")
	suite.Require().NoError(err)

	_, err = suite.seedDriver("CNH-001", "outro@example.com")
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDriverEmailIsUnique() {
	_, err := suite.seedDriver("CNH-001", "carlos@example.com")
	suite.Require().NoError(err)

	_, err = suite.seedDriver("CNH-002", "carlos@example.com")
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDeletingCustomerRemovesDeliveriesAndHistory() {
	customerID := suite.seedCustomer()
	deliveryID := suite.seedDelivery(customerID, nil, nil)
	suite.seedHistory(deliveryID, nil)

	err := suite.db.Delete(&customerrepo.CustomerDTO{}, "id = ?", customerID).Error
	suite.Require().NoError(err)

	suite.EqualValues(0, suite.countRows(&deliveryrepo.DeliveryDTO{}))
	suite.EqualValues(0, suite.countRows(&deliveryrepo.StatusHistoryDTO{}))
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDeletingDeliveryRemovesHistoryAndRouteSlots() {
	customerID := suite.seedCustomer()
	routeID := suite.seedRoute(nil, nil)
	deliveryID := suite.seedDelivery(customerID, nil, &routeID)
	suite.seedHistory(deliveryID, nil)

	err := suite.db.Create(&routerepo.RouteDeliveryDTO{
		RouteID:          routeID,
		DeliveryID:       deliveryID,
		Position:         0,
		RequiredCapacity: 10,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Delete(&deliveryrepo.DeliveryDTO{}, "id = ?", deliveryID).Error
	suite.Require().NoError(err)

	suite.EqualValues(0, suite.countRows(&deliveryrepo.StatusHistoryDTO{}))
	suite.EqualValues(0, suite.countRows(&routerepo.RouteDeliveryDTO{}))
	suite.EqualValues(1, suite.countRows(&routerepo.RouteDTO{}))
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDeletingDriverClearsReferences() {
	customerID := suite.seedCustomer()
	driverID, err := suite.seedDriver("CNH-001", "carlos@example.com")
	suite.Require().NoError(err)

	vehicleID := uuid.New()
	err = suite.db.Create(&vehiclerepo.VehicleDTO{
		ID:              vehicleID,
		Plate:           "ABC1D23",
		Model:           "Sprinter",
		Kind:            "van",
		MaxCapacity:     100,
		Status:          "available",
		CurrentDriverID: &driverID,
		RegisteredAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	deliveryID := suite.seedDelivery(customerID, &driverID, nil)
	suite.seedHistory(deliveryID, &driverID)
	routeID := suite.seedRoute(&driverID, &vehicleID)

	err = suite.db.Delete(&driverrepo.DriverDTO{}, "id = ?", driverID).Error
	suite.Require().NoError(err)

	var deliveryDTO deliveryrepo.DeliveryDTO
	suite.Require().NoError(suite.db.First(&deliveryDTO, "id = ?", deliveryID).Error)
	suite.Nil(deliveryDTO.DriverID)

	var historyDTO deliveryrepo.StatusHistoryDTO
	suite.Require().NoError(suite.db.First(&historyDTO, "delivery_id = ?", deliveryID).Error)
	suite.Nil(historyDTO.DriverID)

	var routeDTO routerepo.RouteDTO
	suite.Require().NoError(suite.db.First(&routeDTO, "id = ?", routeID).Error)
	suite.Nil(routeDTO.DriverID)

	var vehicleDTO vehiclerepo.VehicleDTO
	suite.Require().NoError(suite.db.First(&vehicleDTO, "id = ?", vehicleID).Error)
	suite.Nil(vehicleDTO.CurrentDriverID)
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDeletingRouteDetachesDeliveries() {
	customerID := suite.seedCustomer()
	routeID := suite.seedRoute(nil, nil)
	deliveryID := suite.seedDelivery(customerID, nil, &routeID)

	err := suite.db.Create(&routerepo.RouteDeliveryDTO{
		RouteID:          routeID,
		DeliveryID:       deliveryID,
		Position:         0,
		RequiredCapacity: 10,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Delete(&routerepo.RouteDTO{}, "id = ?", routeID).Error
	suite.Require().NoError(err)

	var deliveryDTO deliveryrepo.DeliveryDTO
	suite.Require().NoError(suite.db.First(&deliveryDTO, "id = ?", deliveryID).Error)
	suite.Nil(deliveryDTO.RouteID)
	suite.EqualValues(0, suite.countRows(&routerepo.RouteDeliveryDTO{}))
}

func (suite *SchemaConstraintsIntegrationTestSuite) TestDeletingAccountClearsDriverLink() {
	accountID := uuid.New()
	err := suite.db.Create(&accountrepo.AccountDTO{
		ID:           accountID,
		Username:     "carlos.pereira",
		PasswordHash: "x",
		Role:         "driver",
		CreatedAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	driverID := uuid.New()
	err = suite.db.Create(&driverrepo.DriverDTO{
		ID:              driverID,
		Name:            "Carlos Pereira",
		TaxID:           "98765432100",
		LicenseCategory: "B",
		LicenseNumber:   "CNH-001",
		Email:           "carlos@example.com",
		Status:          "available",
		AccountID:       &accountID,
		RegisteredAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Delete(&accountrepo.AccountDTO{}, "id = ?", accountID).Error
	suite.Require().NoError(err)

	var driverDTO driverrepo.DriverDTO
	suite.Require().NoError(suite.db.First(&driverDTO, "id = ?", driverID).Error)
	suite.Nil(driverDTO.AccountID)
}

func TestSchemaConstraintsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaConstraintsIntegrationTestSuite))
}
