package orderrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests that
// do not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryTestSuite) newOrderWithItems(products ...kernel.UUID) *order.Order {
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), suite.money("2.00"))
	suite.Require().NoError(err)
	for i, productID := range products {
		suite.Require().NoError(ord.AddItem(productID, i+1, suite.money("10.00")))
	}
	return ord
}

func (suite *OrderRepositoryTestSuite) TestAddAndGetForUpdate_Roundtrip() {
	ctx := context.Background()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	ord := suite.newOrderWithItems(productA, productB)

	err := suite.repo.Add(ctx, ord)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetForUpdate(ctx, ord.ID())
	suite.Require().NoError(err)

	suite.True(ord.ID().IsEqual(loaded.ID()))
	suite.True(ord.CustomerID().IsEqual(loaded.CustomerID()))
	suite.Equal(order.Created, loaded.Status())
	suite.True(loaded.Discount().IsEqual(suite.money("2.00")))
	suite.Require().Len(loaded.Items(), 2)
	suite.True(loaded.Total().IsEqual(ord.Total()))
}

func (suite *OrderRepositoryTestSuite) TestGetForUpdate_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_ReconcilesItems() {
	ctx := context.Background()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	productC := kernel.NewUUID()
	ord := suite.newOrderWithItems(productA, productB)

	suite.Require().NoError(suite.repo.Add(ctx, ord))

	// Change quantity of A, drop B, add C.
	suite.Require().NoError(ord.UpdateItem(productA, 9, suite.money("11.00")))
	suite.Require().NoError(ord.RemoveItem(productB))
	suite.Require().NoError(ord.AddItem(productC, 4, suite.money("3.00")))

	suite.Require().NoError(suite.repo.Update(ctx, ord))

	loaded, err := suite.repo.GetForUpdate(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 2)

	byProduct := make(map[string]int)
	for _, item := range loaded.Items() {
		byProduct[item.ProductID().String()] = item.Quantity()
	}
	suite.Equal(9, byProduct[productA.String()])
	suite.Equal(4, byProduct[productC.String()])
	suite.NotContains(byProduct, productB.String())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	ord := suite.newOrderWithItems(kernel.NewUUID())

	suite.Require().NoError(suite.repo.Add(ctx, ord))
	suite.Require().NoError(ord.ChangeStatus(order.Processing))
	suite.Require().NoError(suite.repo.Update(ctx, ord))

	loaded, err := suite.repo.GetForUpdate(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, loaded.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	ord := suite.newOrderWithItems(kernel.NewUUID())

	err := suite.repo.Update(ctx, ord)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	ord := suite.newOrderWithItems(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repo.Add(ctx, ord))
	suite.Require().NoError(suite.repo.Delete(ctx, ord.ID()))

	_, err := suite.repo.GetForUpdate(ctx, ord.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	err = suite.db.Table("order_items").Where("order_id = ?", ord.ID().Bytes()).Count(&itemCount).Error
	suite.Require().NoError(err)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repo.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryTestSuite))
}
