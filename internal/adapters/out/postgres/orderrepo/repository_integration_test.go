package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"mealtrack/internal/adapters/out/postgres/orderrepo"
	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.UpdateDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_updates, orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
	suite.Require().NoError(err)
	address, err := order.NewAddress("482 Elm Street", "Springfield", "IL", "62704", point)
	suite.Require().NoError(err)
	item, err := order.NewItem("Teriyaki Chicken Bowl", 1, 14.95, "")
	suite.Require().NoError(err)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), []order.Item{item}, 14.95, address, createdAt, createdAt.Add(45*time.Minute))
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertUpdateCount(1) // seed update persisted alongside
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithHistory() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.InDelta(14.95, retrieved.TotalAmount(), 0.001)
	suite.Equal("482 Elm Street", retrieved.Address().Street())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("Teriyaki Chicken Bowl", retrieved.Items()[0].Name())
	suite.Require().Len(retrieved.Updates(), 1)
	suite.Equal(order.Pending, retrieved.Updates()[0].Status())
	suite.Equal("Your order is being processed", retrieved.Updates()[0].Message())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryWithoutRewritingIt() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	update, err := aggregate.Advance(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NotNil(update)

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))
	suite.assertUpdateCount(2)

	// A second save of the same state must not duplicate history rows.
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))
	suite.assertUpdateCount(2)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Require().Len(retrieved.Updates(), 2)
	suite.Equal(order.Pending, retrieved.Updates()[0].Status())
	suite.Equal(order.Confirmed, retrieved.Updates()[1].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsDriverAndLocation() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	now := time.Now().UTC().Truncate(time.Microsecond)
	for aggregate.Status() != order.OutForDelivery {
		now = now.Add(time.Minute)
		_, err := aggregate.Advance(now)
		suite.Require().NoError(err)
	}

	driver, err := order.NewDriver("Alex Rodriguez", "+1-555-0134", "Blue Honda Civic")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AssignDriver(driver))

	pingAt := now.Add(time.Minute)
	point, err := kernel.NewGeoPoint(40.7130, -74.0055)
	suite.Require().NoError(err)
	trackingPoint, err := order.NewTrackingPoint(point, "Moving towards destination", pingAt)
	suite.Require().NoError(err)
	_, err = aggregate.RecordLocation(trackingPoint, "Alex Rodriguez is getting closer to your location", pingAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal("Alex Rodriguez", retrieved.Driver().Name())

	location := retrieved.LastKnownLocation()
	suite.Require().NotNil(location)
	suite.Equal("Moving towards destination", location.Address())
	suite.InDelta(40.7130, location.Point().Latitude(), 0.000001)

	outForDelivery := retrieved.Updates()[7]
	suite.Require().NotNil(outForDelivery.EstimatedMinutes())
	suite.Equal(15, *outForDelivery.EstimatedMinutes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertUpdateCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.UpdateDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
