package addressrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/addressrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type AddressRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *addressrepo.GormUserAddressRepository
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *AddressRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
	suite.repo = addressrepo.NewGormUserAddressRepository(suite.pg.DB, noopTracker{})
}

func (suite *AddressRepositoryIntegrationTestSuite) newEntry(userID kernel.UUID, line1 string) *address.UserAddress {
	lat, lng := 51.5, -0.12
	addr, err := address.NewAddress(address.Fields{
		FirstName: "Ada", Line1: line1, Postcode: "N1 1AA", Country: "GB", Latitude: &lat, Longitude: &lng,
	})
	suite.Require().NoError(err)
	entry, err := address.NewUserAddress(kernel.NewUUID(), userID, addr)
	suite.Require().NoError(err)
	return entry
}

func (suite *AddressRepositoryIntegrationTestSuite) TestAddUpdateList() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	home := suite.newEntry(userID, "1 Main St")
	work := suite.newEntry(userID, "2 High St")
	suite.Require().NoError(suite.repo.Add(ctx, home))
	suite.Require().NoError(suite.repo.Add(ctx, work))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newEntry(kernel.NewUUID(), "3 Elsewhere")))

	work.SetDefaultForBilling(true)
	work.RecordUsage(true, false)
	suite.Require().NoError(suite.repo.Update(ctx, work))

	book, err := suite.repo.ListForUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(book, 2)
	billing := address.DefaultForBilling(book)
	suite.Require().NotNil(billing)
	suite.Equal(work.ID(), billing.ID())
	suite.Equal(1, billing.NumOrdersAsShipping())
	suite.NotNil(billing.Address().Location())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	entry := suite.newEntry(kernel.NewUUID(), "1 Main St")
	suite.Require().NoError(suite.repo.Add(ctx, entry))
	suite.Require().NoError(suite.repo.Delete(ctx, entry.ID()))

	_, err := suite.repo.Get(ctx, entry.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAddressRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(AddressRepositoryIntegrationTestSuite))
}
