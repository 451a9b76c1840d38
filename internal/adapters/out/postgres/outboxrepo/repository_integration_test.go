package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/outbox"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OutboxRepositoryIntegrationTestSuite provides integration tests for OutboxRepository
// using PostgreSQL containers to verify delivery bookkeeping behavior.
type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
	tracker    *MockAggregateTracker
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.MessageDTO{}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db, suite.tracker)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAddAndGetDue_FreshMessageIsImmediatelyDue() {
	ctx := context.Background()

	message := suite.createTestMessage()
	suite.tracker.On("TrackAggregate", message.ID(), message).Once()
	suite.Require().NoError(suite.repository.Add(ctx, message))

	due, err := suite.repository.GetDue(ctx, time.Now().UTC(), 10)
	suite.Require().NoError(err)

	suite.Require().Len(due, 1)
	suite.Equal(message.ID(), due[0].ID())
	suite.Equal(message.OrderID(), due[0].OrderID())
	suite.Equal(message.AgentID(), due[0].AgentID())
	suite.Equal(outbox.StatusPending, due[0].Status())
	suite.Equal(0, due[0].Attempts())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetDue_SkipsDeliveredAndNotYetDueMessages() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(5)

	now := time.Now().UTC()

	dueMessage := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, dueMessage))

	delivered := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	delivered.MarkDelivered()
	suite.Require().NoError(suite.repository.Update(ctx, delivered))

	backedOff := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, backedOff))
	backedOff.RecordFailure(now)
	suite.Require().NoError(suite.repository.Update(ctx, backedOff))

	due, err := suite.repository.GetDue(ctx, now, 10)
	suite.Require().NoError(err)

	suite.Require().Len(due, 1)
	suite.Equal(dueMessage.ID(), due[0].ID())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetDue_BackedOffMessageBecomesDueAgain() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	now := time.Now().UTC()

	message := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, message))
	message.RecordFailure(now)
	suite.Require().NoError(suite.repository.Update(ctx, message))

	// Not due right after the failure
	due, err := suite.repository.GetDue(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Empty(due)

	// Due again once the backoff delay has passed
	due, err = suite.repository.GetDue(ctx, now.Add(time.Minute), 10)
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Equal(message.ID(), due[0].ID())
	suite.Equal(1, due[0].Attempts())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetDue_ReturnsOldestFirstAndHonorsLimit() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, second))
	time.Sleep(10 * time.Millisecond)
	third := suite.createTestMessage()
	suite.Require().NoError(suite.repository.Add(ctx, third))

	due, err := suite.repository.GetDue(ctx, time.Now().UTC(), 2)
	suite.Require().NoError(err)

	suite.Require().Len(due, 2)
	suite.Equal(first.ID(), due[0].ID())
	suite.Equal(second.ID(), due[1].ID())
}

// createTestMessage queues a fresh assignment message.
func (suite *OutboxRepositoryIntegrationTestSuite) createTestMessage() *outbox.Message {
	message, err := outbox.NewAssignmentMessage(
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	return message
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
