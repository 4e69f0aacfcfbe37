package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder(driverID *kernel.UUID) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(),
		kernel.NewUUID(),
		order.Details{
			CustomerName:    "Jordan Avery",
			CustomerPhone:   "+15550100",
			PickupAddress:   "12 Dock St",
			DeliveryAddress: "88 Hill Rd",
		},
		order.Normal,
		driverID,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(o *order.Order) {
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGetRoundTrip() {
	ctx := context.Background()
	driverID := kernel.NewUUID()
	o := suite.createOrder(&driverID)

	suite.addOrder(o)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(order.Assigned, loaded.Status())
	suite.Equal(o.Number(), loaded.Number())
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverID))
	suite.NotNil(loaded.AssignedAt())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsNumber() {
	ctx := context.Background()
	o := suite.createOrder(nil)
	suite.addOrder(o)

	exists, err := suite.repository.ExistsNumber(ctx, o.Number())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsNumber(ctx, "NO-SUCH-NUMBER")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumberRejected() {
	ctx := context.Background()
	first := suite.createOrder(nil)
	suite.addOrder(first)

	dup, err := order.RestoreOrder(
		kernel.NewUUID(), first.Number(), order.Pending, order.Normal,
		nil, kernel.NewUUID(), first.Details(),
		time.Now().UTC(), time.Now().UTC(), nil)
	suite.Require().NoError(err)

	suite.Require().Error(suite.repository.Add(ctx, dup))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusByIDs_TouchesOnlyTheSet() {
	ctx := context.Background()
	inSet1 := suite.createOrder(nil)
	inSet2 := suite.createOrder(nil)
	outside := suite.createOrder(nil)
	suite.addOrder(inSet1)
	suite.addOrder(inSet2)
	suite.addOrder(outside)

	err := suite.repository.UpdateStatusByIDs(
		ctx, []kernel.UUID{inSet1.ID(), inSet2.ID()}, order.Cancelled)
	suite.Require().NoError(err)

	for _, id := range []kernel.UUID{inSet1.ID(), inSet2.ID()} {
		loaded, getErr := suite.repository.Get(ctx, id)
		suite.Require().NoError(getErr)
		suite.Equal(order.Cancelled, loaded.Status())
	}

	untouched, err := suite.repository.Get(ctx, outside.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, untouched.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriverByIDs_ForcesAssignedWithoutPrecondition() {
	ctx := context.Background()
	delivered := suite.createOrder(nil)
	suite.addOrder(delivered)
	suite.Require().NoError(suite.repository.UpdateStatusByIDs(
		ctx, []kernel.UUID{delivered.ID()}, order.Delivered))

	driverID := kernel.NewUUID()
	err := suite.repository.AssignDriverByIDs(ctx, []kernel.UUID{delivered.ID()}, driverID)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, delivered.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, loaded.Status())
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverID))
	suite.NotNil(loaded.AssignedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteByIDs() {
	ctx := context.Background()
	doomed := suite.createOrder(nil)
	kept := suite.createOrder(nil)
	suite.addOrder(doomed)
	suite.addOrder(kept)

	suite.Require().NoError(suite.repository.DeleteByIDs(ctx, []kernel.UUID{doomed.ID()}))

	_, err := suite.repository.Get(ctx, doomed.ID())
	suite.Require().Error(err)

	_, err = suite.repository.Get(ctx, kept.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByDriver_NewestFirst() {
	ctx := context.Background()
	driverID := kernel.NewUUID()
	first := suite.createOrder(&driverID)
	suite.addOrder(first)
	second := suite.createOrder(&driverID)
	suite.addOrder(second)
	other := suite.createOrder(nil)
	suite.addOrder(other)

	orders, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
