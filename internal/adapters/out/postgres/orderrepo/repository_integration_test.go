package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number string) *order.Order {
	price, err := kernel.NewPrice("GBP", decimal.RequireFromString("9.99"), decimal.RequireFromString("2.00"))
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Hamlet", "9780140707342", "BK-1", 2, price)
	suite.Require().NoError(err)
	shipTo, err := address.NewAddress(address.Fields{FirstName: "Ada", Line1: "1 Main St", Postcode: "N1 1AA", Country: "GB"})
	suite.Require().NoError(err)
	userID := kernel.NewUUID()

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Number:             number,
		BasketID:           kernel.NewUUID(),
		UserID:             &userID,
		Currency:           "GBP",
		Lines:              []order.Line{line},
		ShippingAddress:    &shipTo,
		BillingAddress:     &shipTo,
		ShippingMethodCode: "free-shipping",
		ShippingMethodName: "Free shipping",
		ShippingCharge:     kernel.ZeroPrice("GBP"),
		PaymentCharge:      kernel.ZeroPrice("GBP"),
		Total:              price.Multiply(2),
	}, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder("100001")

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("100001", got.Number())
	suite.Equal(order.Pending, got.Status())
	suite.Require().Len(got.Lines(), 1)
	suite.Equal(2, got.Lines()[0].Quantity())
	suite.True(got.Total().InclTax().Equal(o.Total().InclTax()))
	suite.Require().NotNil(got.ShippingAddress())
	suite.Equal("N1 1AA", got.ShippingAddress().Postcode())
	suite.False(got.IsAnonymous())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	o := suite.newOrder("100002")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByNumber(ctx, "100002")
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))

	_, err = suite.repository.GetByNumber(ctx, "999999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("100003")))
	suite.Require().Error(suite.repository.Add(ctx, suite.newOrder("100003")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SavesStatusAndNotes() {
	ctx := context.Background()
	o := suite.newOrder("100004")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.SetStatus(order.Processing))
	note, err := order.NewNote(kernel.NewUUID(), "Picked", false, nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddNote(note))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	// a second save must not duplicate the note
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, got.Status())
	suite.Require().Len(got.Notes(), 1)
	suite.Equal("Picked", got.Notes()[0].Message())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("100005"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumberSequence_Increases() {
	ctx := context.Background()
	first, err := suite.repository.NextNumberSequence(ctx)
	suite.Require().NoError(err)
	second, err := suite.repository.NextNumberSequence(ctx)
	suite.Require().NoError(err)
	suite.Greater(second, first)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
