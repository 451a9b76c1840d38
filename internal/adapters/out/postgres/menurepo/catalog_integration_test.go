package menurepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MenuCatalogIntegrationTestSuite provides integration tests for the read-only
// menu catalog adapter using PostgreSQL containers.
type MenuCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *menurepo.GormMenuCatalog
}

func (suite *MenuCatalogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)

	suite.catalog = menurepo.NewGormMenuCatalog(suite.db)
}

func (suite *MenuCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuCatalogIntegrationTestSuite) TestGetItems_RoundTripsCatalogEntries() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	burgerID := suite.seedMenuItem(restaurantID, "Burger", "12.50", true)
	saladID := suite.seedMenuItem(restaurantID, "Salad", "8.00", false)

	items, err := suite.catalog.GetItems(ctx, []kernel.UUID{burgerID, saladID})

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)

	burger := items[burgerID]
	suite.Equal("Burger", burger.Name)
	suite.Equal(restaurantID, burger.RestaurantID)
	suite.Equal("12.50", burger.Price.Decimal().StringFixed(2))
	suite.True(burger.IsAvailable)

	salad := items[saladID]
	suite.Equal("Salad", salad.Name)
	suite.False(salad.IsAvailable)
}

func (suite *MenuCatalogIntegrationTestSuite) TestGetItems_UnknownIDsAreAbsentFromResult() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	knownID := suite.seedMenuItem(restaurantID, "Pizza", "15.00", true)
	unknownID := kernel.NewUUID()

	items, err := suite.catalog.GetItems(ctx, []kernel.UUID{knownID, unknownID})

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Contains(items, knownID)
	suite.NotContains(items, unknownID)
}

func (suite *MenuCatalogIntegrationTestSuite) TestGetItems_EmptyIDList() {
	items, err := suite.catalog.GetItems(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *MenuCatalogIntegrationTestSuite) TestGetItems_InvalidID() {
	_, err := suite.catalog.GetItems(context.Background(), []kernel.UUID{{}})

	suite.Require().Error(err)
}

func (suite *MenuCatalogIntegrationTestSuite) seedMenuItem(
	restaurantID kernel.UUID,
	name string,
	price string,
	available bool,
) kernel.UUID {
	id := kernel.NewUUID()

	amount, err := decimal.NewFromString(price)
	suite.Require().NoError(err)

	dto := menurepo.MenuItemDTO{
		ID:           id.Bytes(),
		RestaurantID: restaurantID.Bytes(),
		Name:         name,
		Price:        amount,
		IsAvailable:  available,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	return id
}

func TestMenuCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuCatalogIntegrationTestSuite))
}
