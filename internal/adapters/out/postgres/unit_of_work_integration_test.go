package postgres_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/counterrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination between the
// order repository and the per-day counter against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&counterrepo.CounterDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_counters").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(orderNumber order.OrderNumber) *order.Order {
	item, err := order.NewItem("prod-1", "Espresso Grinder", 1, decimal.NewFromFloat(129.00), "")
	suite.Require().NoError(err)

	address, err := order.NewAddress("12 Main St", "Springfield", "IL", "62701", "US")
	suite.Require().NoError(err)

	totals, err := order.NewTotals(
		decimal.NewFromFloat(5.00),
		decimal.NewFromFloat(129.00),
		decimal.NewFromFloat(10.32),
		decimal.NewFromFloat(144.32),
	)
	suite.Require().NoError(err)

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		"customer-1",
		"store-1",
		[]order.Item{item},
		order.CreditCard,
		address,
		totals,
		"",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return newOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) counterValue(day string) int {
	var dto counterrepo.CounterDTO
	err := suite.db.First(&dto, "day = ?", day).Error
	if err != nil {
		suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
		return 0
	}
	return dto.Value
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndCounterTogether() {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	sequencer, err := services.NewOrderNumberSequencer(uow.OrderCounterRepository())
	suite.Require().NoError(err)

	orderNumber, err := sequencer.Next(ctx, now)
	suite.Require().NoError(err)
	suite.Equal("ORD-20240615-0001", orderNumber.String())

	newOrder := suite.buildOrder(orderNumber)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
	suite.Equal(1, suite.counterValue("20240615"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndCounterIncrement() {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	sequencer, err := services.NewOrderNumberSequencer(uow.OrderCounterRepository())
	suite.Require().NoError(err)

	orderNumber, err := sequencer.Next(ctx, now)
	suite.Require().NoError(err)

	newOrder := suite.buildOrder(orderNumber)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	// Neither the order nor the burned sequence survives the rollback
	suite.Equal(int64(0), suite.orderCount())
	suite.Equal(0, suite.counterValue("20240615"))

	// The next placement draws sequence 1 again
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))

	sequencer2, err := services.NewOrderNumberSequencer(uow2.OrderCounterRepository())
	suite.Require().NoError(err)

	orderNumber2, err := sequencer2.Next(ctx, now)
	suite.Require().NoError(err)
	suite.Equal("ORD-20240615-0001", orderNumber2.String())
	suite.Require().NoError(uow2.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_RepositoryWritesImmediately() {
	ctx := context.Background()

	orderNumber, err := order.NewOrderNumber(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 1)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	newOrder := suite.buildOrder(orderNumber)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFullLifecycleWorkflow() {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	// Place
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	sequencer, err := services.NewOrderNumberSequencer(uow.OrderCounterRepository())
	suite.Require().NoError(err)
	orderNumber, err := sequencer.Next(ctx, now)
	suite.Require().NoError(err)
	placed := suite.buildOrder(orderNumber)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	// Walk the order through the forward flow, one transaction per step
	for _, target := range []order.Status{order.Processing, order.Shipped, order.Delivered} {
		stepUoW := suite.factory.Create()
		suite.Require().NoError(stepUoW.Begin(ctx))
		repo := stepUoW.OrderRepository()

		loaded, loadErr := repo.Get(ctx, placed.ID())
		suite.Require().NoError(loadErr)

		observed := loaded.Status()
		suite.Require().NoError(loaded.ChangeStatus(target, now.Add(time.Hour)))
		suite.Require().NoError(repo.Update(ctx, loaded, observed))
		suite.Require().NoError(stepUoW.Commit(ctx))
	}

	final, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, final.Status())
	// Card payment stays pending even after delivery
	suite.Equal(order.PaymentPending, final.PaymentStatus())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGet_UnknownOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.factory.Create().OrderRepository().Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
