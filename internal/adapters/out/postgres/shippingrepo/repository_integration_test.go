package shippingrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/shippingrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ShippingRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *shippingrepo.GormShippingMethodRepository
}

func (suite *ShippingRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ShippingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *ShippingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
	suite.repo = shippingrepo.NewGormShippingMethodRepository(suite.pg.DB, noopTracker{})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (suite *ShippingRepositoryIntegrationTestSuite) TestWeightBased_BandsRoundTrip() {
	ctx := context.Background()
	cfg, err := shipping.NewConfiguration(kernel.NewUUID(), "Royal Mail 1st class", "", []string{"GB"}, true)
	suite.Require().NoError(err)
	heavy, err := shipping.NewWeightBand(kernel.NewUUID(), dec("5"), dec("12.00"))
	suite.Require().NoError(err)
	light, err := shipping.NewWeightBand(kernel.NewUUID(), dec("1"), dec("3.00"))
	suite.Require().NoError(err)
	m, err := shipping.NewWeightBased(cfg, dec("0.5"), heavy, light)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, m))

	got, err := suite.repo.Get(ctx, m.ID())
	suite.Require().NoError(err)
	wb, ok := got.(*shipping.WeightBased)
	suite.Require().True(ok)
	suite.Equal("royal-mail-1st-class", wb.Code())
	suite.Equal([]string{"GB"}, wb.Countries())
	suite.Require().Len(wb.Bands(), 2)
	suite.True(wb.Bands()[0].UpperLimit().Equal(dec("1")))

	suite.Require().NoError(wb.RemoveBand(light.ID()))
	suite.Require().NoError(wb.Rename("Royal Mail"))
	suite.Require().NoError(suite.repo.Update(ctx, wb))

	got, err = suite.repo.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("Royal Mail", got.Name())
	suite.Equal("royal-mail-1st-class", got.Code())
	suite.Len(got.(*shipping.WeightBased).Bands(), 1)
}

func (suite *ShippingRepositoryIntegrationTestSuite) TestEnabledMethods_SkipsDisabled() {
	ctx := context.Background()
	on, err := shipping.NewConfiguration(kernel.NewUUID(), "Courier", "", nil, true)
	suite.Require().NoError(err)
	off, err := shipping.NewConfiguration(kernel.NewUUID(), "Pigeon", "", nil, false)
	suite.Require().NoError(err)
	threshold := dec("50")
	m1, err := shipping.NewOrderAndItemCharges(on, dec("4.99"), dec("1.00"), &threshold)
	suite.Require().NoError(err)
	m2, err := shipping.NewOrderAndItemCharges(off, dec("1.00"), dec("0"), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, m1))
	suite.Require().NoError(suite.repo.Add(ctx, m2))

	all, err := suite.repo.List(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	enabled, err := suite.repo.EnabledMethods(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(enabled, 1)
	suite.Equal("courier", enabled[0].Code())
	oic, ok := enabled[0].(*shipping.OrderAndItemCharges)
	suite.Require().True(ok)
	suite.Require().NotNil(oic.FreeShippingThreshold())
	suite.True(oic.FreeShippingThreshold().Equal(threshold))
}

func (suite *ShippingRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	cfg, err := shipping.NewConfiguration(kernel.NewUUID(), "Courier", "", nil, true)
	suite.Require().NoError(err)
	m, err := shipping.NewWeightBased(cfg, dec("1"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, m))

	suite.Require().NoError(suite.repo.Delete(ctx, m.ID()))
	_, err = suite.repo.Get(ctx, m.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repo.Delete(ctx, m.ID()), errs.ErrObjectNotFound)
}

func TestShippingRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(ShippingRepositoryIntegrationTestSuite))
}
