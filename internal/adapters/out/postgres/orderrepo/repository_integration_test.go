package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	product    *product.Product
	clientID   int64
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)

	seed := suite.database.Seed(ctx)
	client, err := seed.User("alice", false)
	suite.Require().NoError(err)
	suite.clientID = client.ID()

	sup, err := seed.Supplier("Acme", nil, true)
	suite.Require().NoError(err)
	suite.product, err = seed.Product(sup.ID(), "Widget", 250, 5)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndStoresLine() {
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(&suite.clientID, suite.product.ID(), 6, createdAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Positive(o.ID())

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.Status())
	suite.Equal(6, stored.Quantity())
	suite.Require().NotNil(stored.ClientID())
	suite.Equal(suite.clientID, *stored.ClientID())
	suite.Require().NotNil(stored.ProductID())
	suite.Equal(suite.product.ID(), *stored.ProductID())
	suite.True(createdAt.Equal(stored.CreatedAt()))

	lines := stored.Lines()
	suite.Require().Len(lines, 1)
	suite.Equal(suite.product.ID(), lines[0].ProductID())
	suite.Equal(6, lines[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AnonymousOrder() {
	ctx := context.Background()
	o, err := order.NewOrder(nil, suite.product.ID(), 5, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.ClientID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownProduct() {
	o, err := order.NewOrder(nil, suite.product.ID()+1000, 5, time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o, err := order.NewOrder(nil, suite.product.ID(), 5, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.MarkReady())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, stored.Status())
	suite.Len(stored.Lines(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	o, err := order.RestoreOrder(
		999, nil, nil, 1, time.Now(), order.Pending,
		[]order.Line{mustLine(suite.T(), suite.product.ID(), 1)},
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder() {
	_, err := suite.repository.Get(context.Background(), 12345)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestProductDeletionCascades() {
	ctx := context.Background()
	o, err := order.NewOrder(nil, suite.product.ID(), 5, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM products WHERE id = ?", suite.product.ID()).Error)

	_, err = suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func mustLine(t *testing.T, productID int64, quantity int) order.Line {
	t.Helper()
	l, err := order.NewLine(productID, quantity)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
