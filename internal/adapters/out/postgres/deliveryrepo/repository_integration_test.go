package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *deliveryrepo.GormDeliveryRepository
	order      *order.Order
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.database.DB)

	seed := suite.database.Seed(ctx)
	sup, err := seed.Supplier("Acme", nil, true)
	suite.Require().NoError(err)
	p, err := seed.Product(sup.ID(), "Widget", 100, 1)
	suite.Require().NoError(err)
	suite.order, err = seed.Order(nil, p.ID(), 1, time.Now())
	suite.Require().NoError(err)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	scheduled := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	amount := kernel.MoneyFromInt(2500)
	d, err := delivery.NewDelivery(suite.order.ID(), delivery.Details{
		Transport:   delivery.Velo,
		Address:     "4 Harbour Road",
		Amount:      &amount,
		Description: "Leave at the door",
		ScheduledAt: &scheduled,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, d))
	suite.Positive(d.ID())

	stored, err := suite.repository.GetByOrderID(ctx, suite.order.ID())
	suite.Require().NoError(err)

	snap := stored.Snapshot()
	suite.Equal(d.ID(), snap.ID)
	suite.Equal(delivery.Velo, snap.Transport)
	suite.Equal("2500.00", snap.Amount.String())
	suite.Equal("Leave at the door", snap.Description)
	suite.Require().NotNil(snap.ScheduledAt)
	suite.True(scheduled.Equal(*snap.ScheduledAt))
	suite.Equal(delivery.Prep, snap.Status)
	suite.Nil(snap.AssignedAt)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTimestamps() {
	ctx := context.Background()
	d, err := delivery.NewDelivery(suite.order.ID(), delivery.Details{Transport: delivery.Moto})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	suite.Require().NoError(d.ChangeStatus(delivery.InTransit, now))
	suite.Require().NoError(d.ChangeStatus(delivery.Delivered, now.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	stored, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, stored.Status())
	suite.Require().NotNil(stored.AssignedAt())
	suite.True(now.Equal(*stored.AssignedAt()))
	suite.Require().NotNil(stored.DeliveredAt())
	suite.True(now.Add(time.Hour).Equal(*stored.DeliveredAt()))
	suite.Require().NotNil(stored.ActualAt())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForOrder() {
	ctx := context.Background()
	first, err := delivery.NewDelivery(suite.order.ID(), delivery.Details{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := delivery.NewDelivery(suite.order.ID(), delivery.Details{})
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Add(ctx, second), errs.ErrValueIsInvalid)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_UnknownOrder() {
	d, err := delivery.NewDelivery(suite.order.ID()+100, delivery.Details{})
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Add(context.Background(), d), errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_Unknown() {
	_, err := suite.repository.Get(context.Background(), 5)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByOrderID(context.Background(), suite.order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
