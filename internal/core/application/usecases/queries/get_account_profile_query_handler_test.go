package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAccountProfileQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAccountProfileQueryHandler
}

func (suite *GetAccountProfileQueryHandlerTestSuite) SetupSuite() {
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
		&accountrepo.AccountDTO{},
		&driverrepo.DriverDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAccountProfileQueryHandler(db)
}

func (suite *GetAccountProfileQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAccountProfileQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE accounts, drivers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAccountProfileQueryHandlerTestSuite) seedAccount(username, role string) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&accountrepo.AccountDTO{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehash",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetAccountProfileQueryHandlerTestSuite) TestHandle_AdminAccountWithoutDriver() {
	suite.seedAccount("admin", "admin")

	query, err := queries.NewGetAccountProfileQuery("admin")
	suite.Require().NoError(err)

	profile, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("admin", profile.Username)
	suite.Equal("admin@example.com", profile.Email)
	suite.Equal("admin", profile.Role)
	suite.NotEmpty(profile.PasswordHash)
	suite.Nil(profile.DriverID)
	suite.Nil(profile.DriverName)
	suite.Nil(profile.DriverStatus)
}

func (suite *GetAccountProfileQueryHandlerTestSuite) TestHandle_DriverAccountCarriesLinkedProfile() {
	accountID := suite.seedAccount("carlos.pereira", "driver")

	driverID := uuid.New()
	err := suite.db.Create(&driverrepo.DriverDTO{
		ID:              driverID,
		Name:            "Carlos Pereira",
		TaxID:           "98765432100",
		LicenseCategory: "B",
		LicenseNumber:   "CNH-123",
		Status:          "available",
		AccountID:       &accountID,
		RegisteredAt:    time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetAccountProfileQuery("carlos.pereira")
	suite.Require().NoError(err)

	profile, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("driver", profile.Role)
	suite.Require().NotNil(profile.DriverID)
	suite.Equal(driverID, profile.DriverID.Bytes())
	suite.Require().NotNil(profile.DriverName)
	suite.Equal("Carlos Pereira", *profile.DriverName)
	suite.Require().NotNil(profile.DriverStatus)
	suite.Equal("available", *profile.DriverStatus)
}

func (suite *GetAccountProfileQueryHandlerTestSuite) TestHandle_UnknownUsername_ReturnsNotFound() {
	query, err := queries.NewGetAccountProfileQuery("nobody")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetAccountProfileQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAccountProfileQuery{})
	suite.Require().Error(err)
}

func TestGetAccountProfileQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAccountProfileQueryHandlerTestSuite))
}
