package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// QueriesIntegrationTestSuite seeds one catalog and runs every read model
// against it.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database

	alice, bob   *user.User
	acme, globex *supplier.Supplier
	widget       *product.Product
	gadget       *product.Product
	gizmo        *product.Product
	hidden       *product.Product
	o1, o2, o3   *order.Order
	d1, d3       *delivery.Delivery
}

func day(d, hour int) time.Time {
	return time.Date(2024, 1, d, hour, 0, 0, 0, time.UTC)
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	database, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.database = database

	seed := database.Seed(ctx)
	r := suite.Require()

	suite.alice, err = seed.User("alice", false)
	r.NoError(err)
	suite.bob, err = seed.User("bob", false)
	r.NoError(err)
	bobID := suite.bob.ID()

	suite.acme, err = seed.Supplier("Acme", &bobID, true)
	r.NoError(err)
	suite.globex, err = seed.Supplier("Globex", nil, false)
	r.NoError(err)

	suite.widget, err = seed.ProductAt(suite.acme.ID(), "Widget", 250, 1, day(1, 9))
	r.NoError(err)
	suite.gadget, err = seed.ProductAt(suite.acme.ID(), "Gadget", 100, 1, day(2, 9))
	r.NoError(err)
	suite.gizmo, err = seed.ProductAt(suite.globex.ID(), "Gizmo", 40, 5, day(3, 9))
	r.NoError(err)
	suite.hidden, err = seed.ProductAt(suite.acme.ID(), "Hidden", 10, 1, day(4, 9))
	r.NoError(err)
	r.NoError(database.DB.Exec("UPDATE products SET active = FALSE WHERE id = ?", suite.hidden.ID()).Error)

	aliceID := suite.alice.ID()
	suite.o1, err = seed.Order(&aliceID, suite.widget.ID(), 2, day(10, 15))
	r.NoError(err)
	suite.o2, err = seed.Order(&aliceID, suite.gizmo.ID(), 5, day(15, 8))
	r.NoError(err)
	suite.o3, err = seed.Order(nil, suite.gadget.ID(), 1, day(20, 23))
	r.NoError(err)
	r.NoError(database.DB.Exec("UPDATE orders SET status = ? WHERE id = ?", "delivered", suite.o3.ID()).Error)

	suite.d1, err = seed.Delivery(suite.o1.ID(), delivery.Moto, delivery.Prep)
	r.NoError(err)
	suite.d3, err = seed.Delivery(suite.o3.ID(), delivery.Velo, delivery.Delivered)
	r.NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TestListProducts_ActiveNewestFirst() {
	products, err := queries.NewListProductsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListProductsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(products, 3)
	suite.Equal("Gizmo", products[0].Name)
	suite.Equal("Gadget", products[1].Name)
	suite.Equal("Widget", products[2].Name)
	suite.Equal("Acme", products[2].SupplierName)
	suite.Equal("250.00", products[2].Price.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetProduct_WithLastOpenOrder() {
	handler := queries.NewGetProductQueryHandler(suite.database.DB)

	q, err := queries.NewGetProductQuery(suite.widget.Slug())
	suite.Require().NoError(err)
	detail, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(suite.widget.ID(), detail.ID)
	suite.Require().NotNil(detail.LastOpenOrder)
	suite.Equal(suite.o1.ID(), detail.LastOpenOrder.ID)
	suite.Equal("500.00", detail.LastOpenOrder.Total.String())

	q, err = queries.NewGetProductQuery(suite.gadget.Slug())
	suite.Require().NoError(err)
	detail, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Nil(detail.LastOpenOrder, "delivered orders are not open")
}

func (suite *QueriesIntegrationTestSuite) TestGetProduct_InactiveOrUnknownIsNotFound() {
	handler := queries.NewGetProductQueryHandler(suite.database.DB)

	for _, slug := range []string{suite.hidden.Slug(), "no-such-product"} {
		q, err := queries.NewGetProductQuery(slug)
		suite.Require().NoError(err)
		_, err = handler.Handle(context.Background(), q)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound, slug)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_DropsVanishedProducts() {
	ctx := context.Background()
	store := memory.NewCartStore()
	session := kernel.NewUUID()

	c := cart.NewCart()
	suite.Require().NoError(c.Add(suite.widget.ID(), 2))
	suite.Require().NoError(c.Add(suite.gadget.ID(), 1))
	suite.Require().NoError(c.Add(999999, 4))
	suite.Require().NoError(store.Save(ctx, session, c))

	handler := queries.NewGetCartQueryHandler(store, postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB))
	q, err := queries.NewGetCartQuery(session)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Lines, 2)
	suite.Equal("600.00", resp.Total.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_WithLinesAndDelivery() {
	q, err := queries.NewGetOrderQuery(suite.o1.ID())
	suite.Require().NoError(err)

	detail, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal("Widget", detail.ProductName)
	suite.Equal("pending", detail.Status)
	suite.Require().Len(detail.Lines, 1)
	suite.Equal("Acme", detail.Lines[0].SupplierName)
	suite.Equal("500.00", detail.Lines[0].Subtotal.String())
	suite.Require().NotNil(detail.Delivery)
	suite.Equal(suite.d1.ID(), detail.Delivery.ID)
	suite.Equal("moto", detail.Delivery.Transport)
	suite.Equal("4000.00", detail.Delivery.Amount.String())

	q, err = queries.NewGetOrderQuery(suite.o2.ID())
	suite.Require().NoError(err)
	detail, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Nil(detail.Delivery)

	q, err = queries.NewGetOrderQuery(424242)
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListCustomerOrders() {
	handler := queries.NewListCustomerOrdersQueryHandler(suite.database.DB)

	q, err := queries.NewListCustomerOrdersQuery(suite.alice.ID(), "")
	suite.Require().NoError(err)
	orders, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(suite.o2.ID(), orders[0].ID)

	q, err = queries.NewListCustomerOrdersQuery(suite.alice.ID(), "delivered")
	suite.Require().NoError(err)
	orders, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *QueriesIntegrationTestSuite) listOrders(status, search string) []queries.OrderRecord {
	q, err := queries.NewListOrdersQuery(status, search)
	suite.Require().NoError(err)
	records, err := queries.NewListOrdersQueryHandler(suite.database.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	return records
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Filters() {
	all := suite.listOrders("", "")
	suite.Require().Len(all, 3)
	suite.Equal(suite.o3.ID(), all[0].ID)

	byName := suite.listOrders("", "wid")
	suite.Require().Len(byName, 1)
	suite.Equal(suite.o1.ID(), byName[0].ID)
	suite.Equal("Acme", byName[0].SupplierName)
	suite.Equal("250.00", byName[0].UnitPrice.String())
	suite.Equal("500.00", byName[0].Total.String())
	suite.Equal("alice", byName[0].ClientUsername)
	suite.Equal("prep", byName[0].DeliveryStatus)

	byStatus := suite.listOrders("delivered", "")
	suite.Require().Len(byStatus, 1)
	suite.Equal(suite.o3.ID(), byStatus[0].ID)

	combined := suite.listOrders("pending", "Gadget")
	suite.Empty(combined)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_NumericSearchMatchesID() {
	db := suite.database.DB
	term := formatID(suite.o2.ID())
	suite.Require().NoError(db.Exec("UPDATE products SET name = ? WHERE id = ?", "Gadget "+term, suite.gadget.ID()).Error)
	defer func() {
		suite.Require().NoError(db.Exec("UPDATE products SET name = ? WHERE id = ?", "Gadget", suite.gadget.ID()).Error)
	}()

	records := suite.listOrders("", term)

	suite.Require().Len(records, 1)
	suite.Equal(suite.o2.ID(), records[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_SignedTermSearchesNames() {
	suite.Empty(suite.listOrders("", "-"+formatID(suite.o2.ID())))
}

func (suite *QueriesIntegrationTestSuite) listDeliveries(status, from, to string) []queries.DeliveryResponse {
	dates, err := queries.ParseDateRange(from, to)
	suite.Require().NoError(err)
	q, err := queries.NewListDeliveriesQuery(status, dates)
	suite.Require().NoError(err)
	deliveries, err := queries.NewListDeliveriesQueryHandler(suite.database.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	return deliveries
}

func (suite *QueriesIntegrationTestSuite) TestListDeliveries_InclusiveDateRange() {
	suite.Len(suite.listDeliveries("", "", ""), 2)

	sameDay := suite.listDeliveries("", "2024-01-10", "2024-01-10")
	suite.Require().Len(sameDay, 1)
	suite.Equal(suite.d1.ID(), sameDay[0].ID)

	upToLastDay := suite.listDeliveries("", "2024-01-11", "2024-01-20")
	suite.Require().Len(upToLastDay, 1)
	suite.Equal(suite.d3.ID(), upToLastDay[0].ID)

	suite.Empty(suite.listDeliveries("", "2024-01-21", ""))
	suite.Len(suite.listDeliveries("delivered", "", ""), 1)
}

func (suite *QueriesIntegrationTestSuite) supplierQuery(s *supplier.Supplier) queries.SupplierQuery {
	q, err := queries.NewSupplierQuery(s.ID())
	suite.Require().NoError(err)
	return q
}

func (suite *QueriesIntegrationTestSuite) TestSupplierProducts_IncludeInactive() {
	products, err := queries.NewListSupplierProductsQueryHandler(suite.database.DB).
		Handle(context.Background(), suite.supplierQuery(suite.acme))
	suite.Require().NoError(err)
	suite.Len(products, 3)
	for _, p := range products {
		suite.Equal(suite.acme.ID(), p.SupplierID)
	}
}

func (suite *QueriesIntegrationTestSuite) TestSupplierOrders_ScopedToSupplier() {
	handler := queries.NewListSupplierOrdersQueryHandler(suite.database.DB)

	q, err := queries.NewListSupplierOrdersQuery(suite.acme.ID(), "", queries.DateRange{})
	suite.Require().NoError(err)
	orders, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(suite.o3.ID(), orders[0].ID)
	suite.Equal(suite.o1.ID(), orders[1].ID)
	suite.Require().Len(orders[1].Lines, 1)
	suite.Equal("Widget", orders[1].Lines[0].ProductName)

	q, err = queries.NewListSupplierOrdersQuery(suite.globex.ID(), "", queries.DateRange{})
	suite.Require().NoError(err)
	orders, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(suite.o2.ID(), orders[0].ID)

	dates, err := queries.ParseDateRange("2024-01-01", "2024-01-10")
	suite.Require().NoError(err)
	q, err = queries.NewListSupplierOrdersQuery(suite.acme.ID(), "pending", dates)
	suite.Require().NoError(err)
	orders, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(suite.o1.ID(), orders[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestSupplierOrders_DirectProductOrAnyLine() {
	db := suite.database.DB
	suite.Require().NoError(db.Exec(
		"UPDATE order_lines SET product_id = ? WHERE order_id = ?", suite.widget.ID(), suite.o2.ID(),
	).Error)
	defer func() {
		suite.Require().NoError(db.Exec(
			"UPDATE order_lines SET product_id = ? WHERE order_id = ?", suite.gizmo.ID(), suite.o2.ID(),
		).Error)
	}()
	handler := queries.NewListSupplierOrdersQueryHandler(db)

	q, err := queries.NewListSupplierOrdersQuery(suite.globex.ID(), "", queries.DateRange{})
	suite.Require().NoError(err)
	orders, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(suite.o2.ID(), orders[0].ID)
	suite.Require().Len(orders[0].Lines, 1)
	suite.Equal("Gizmo", orders[0].Lines[0].ProductName)

	q, err = queries.NewListSupplierOrdersQuery(suite.acme.ID(), "", queries.DateRange{})
	suite.Require().NoError(err)
	orders, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(suite.o2.ID(), orders[1].ID)
	suite.Require().Len(orders[1].Lines, 1)
	suite.Equal("Widget", orders[1].Lines[0].ProductName)
}

func (suite *QueriesIntegrationTestSuite) TestSupplierDeliveries() {
	handler := queries.NewListSupplierDeliveriesQueryHandler(suite.database.DB)

	q, err := queries.NewListSupplierDeliveriesQuery(suite.acme.ID(), "prep", queries.DateRange{})
	suite.Require().NoError(err)
	deliveries, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(deliveries, 1)
	suite.Equal(suite.d1.ID(), deliveries[0].ID)

	q, err = queries.NewListSupplierDeliveriesQuery(suite.globex.ID(), "", queries.DateRange{})
	suite.Require().NoError(err)
	deliveries, err = handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Empty(deliveries)
}

func (suite *QueriesIntegrationTestSuite) TestSupplierDashboard() {
	dashboard, err := queries.NewGetSupplierDashboardQueryHandler(suite.database.DB).
		Handle(context.Background(), suite.supplierQuery(suite.acme))
	suite.Require().NoError(err)

	suite.Equal(queries.DashboardResponse{
		TotalProducts:     3,
		TotalOrders:       2,
		TotalDeliveries:   2,
		PendingDeliveries: 1,
		TotalSold:         3,
	}, dashboard)
}

func (suite *QueriesIntegrationTestSuite) TestSupplierSales_BestSellersFirst() {
	sales, err := queries.NewGetSupplierSalesQueryHandler(suite.database.DB).
		Handle(context.Background(), suite.supplierQuery(suite.acme))
	suite.Require().NoError(err)

	suite.Require().Len(sales, 2)
	suite.Equal("Widget", sales[0].ProductName)
	suite.Equal(int64(2), sales[0].Quantity)
	suite.Equal("500.00", sales[0].Amount.String())
	suite.Equal("Gadget", sales[1].ProductName)
	suite.Equal("100.00", sales[1].Amount.String())
}

func (suite *QueriesIntegrationTestSuite) TestListSuppliers() {
	suppliers, err := queries.NewListSuppliersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListSuppliersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(suppliers, 2)
	suite.Equal("Acme", suppliers[0].Name)
	suite.Equal(int64(3), suppliers[0].ProductCount)
	suite.True(suppliers[0].Approved)
	suite.False(suppliers[1].Approved)
}

func (suite *QueriesIntegrationTestSuite) TestGetPrincipal() {
	handler := queries.NewGetPrincipalQueryHandler(suite.database.DB)

	q, err := queries.NewGetPrincipalQuery(suite.bob.ID())
	suite.Require().NoError(err)
	bob, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().NotNil(bob.SupplierID)
	suite.Equal(suite.acme.ID(), *bob.SupplierID)
	suite.True(bob.SupplierApproved)

	q, err = queries.NewGetPrincipalQuery(suite.alice.ID())
	suite.Require().NoError(err)
	alice, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Nil(alice.SupplierID)
	suite.False(alice.IsStaff)

	q, err = queries.NewGetPrincipalQuery(987654)
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
