package queries_test

import (
	"context"
	"testing"
	"time"

	"trix/internal/adapters/out/postgres/shipmentrepo"
	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentQueryHandler
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))

	suite.handler = queries.NewGetShipmentQueryHandler(db)
}

func (suite *GetShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error)
}

func (suite *GetShipmentQueryHandlerTestSuite) seedShipment(customerID kernel.UUID, assignTo *kernel.UUID) *shipment.Shipment {
	origin, err := kernel.NewGeoPoint(25.2048, 55.2708)
	suite.Require().NoError(err)
	destination, err := kernel.NewGeoPoint(24.4539, 54.3773)
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(300.00)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		origin, destination,
		"Sheikh Zayed Road, Dubai", "Corniche Road, Abu Dhabi",
		120, 121.5, price,
	)
	suite.Require().NoError(err)

	if assignTo != nil {
		suite.Require().NoError(s.Accept(*assignTo))
	}

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), s))
	return s
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_OwnerReadsOwnShipment() {
	customerID := kernel.NewUUID()
	s := suite.seedShipment(customerID, nil)

	query, err := queries.NewGetShipmentQuery(s.ID(), customerID, queries.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(s.ID(), result.ID)
	suite.Equal(customerID, result.CustomerID)
	suite.Equal("pending", result.Status)
	suite.Equal("Corniche Road, Abu Dhabi", result.DestinationAddress)
	suite.InDelta(121.5, result.DistanceKm, 0.001)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ForeignCustomer_NotVisible() {
	s := suite.seedShipment(kernel.NewUUID(), nil)

	query, err := queries.NewGetShipmentQuery(s.ID(), kernel.NewUUID(), queries.RoleCustomer)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrShipmentNotVisible)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_AssignedDriver_ReadsShipment() {
	driverID := kernel.NewUUID()
	s := suite.seedShipment(kernel.NewUUID(), &driverID)

	query, err := queries.NewGetShipmentQuery(s.ID(), driverID, queries.RoleDriver)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.DriverID)
	suite.True(result.DriverID.IsEqual(driverID))
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_UnassignedDriver_NotVisible() {
	s := suite.seedShipment(kernel.NewUUID(), nil)

	query, err := queries.NewGetShipmentQuery(s.ID(), kernel.NewUUID(), queries.RoleDriver)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrShipmentNotVisible)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_Admin_ReadsAnyShipment() {
	s := suite.seedShipment(kernel.NewUUID(), nil)

	query, err := queries.NewGetShipmentQuery(s.ID(), kernel.NewUUID(), queries.RoleAdmin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(s.ID(), result.ID)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID(), kernel.NewUUID(), queries.RoleAdmin)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetShipmentQuery{})

	suite.Require().Error(err)
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}
