package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *reviewrepo.GormReviewRepository
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
	suite.repo = reviewrepo.NewGormReviewRepository(suite.pg.DB, noopTracker{})
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestVotesAndModeration_Persist() {
	ctx := context.Background()
	author := kernel.NewUUID()
	productID := kernel.NewUUID()
	r, err := review.NewProductReview(kernel.NewUUID(), productID, review.Author{UserID: &author},
		4, "Solid", "Does the job", true, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, r))

	voter := kernel.NewUUID()
	suite.Require().NoError(r.VoteUp(&voter, time.Now()))
	suite.Require().NoError(r.Moderate(review.Approved))
	suite.Require().NoError(suite.repo.Update(ctx, r))

	got, err := suite.repo.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.True(got.IsApproved())
	suite.Equal(1, got.TotalVotes())
	suite.Equal(1, got.DeltaVotes())
	suite.ErrorIs(got.CanUserVote(&voter), review.ErrAlreadyVoted)

	reviewed, err := suite.repo.HasReviewBy(ctx, productID, author)
	suite.Require().NoError(err)
	suite.True(reviewed)
	reviewed, err = suite.repo.HasReviewBy(ctx, productID, voter)
	suite.Require().NoError(err)
	suite.False(reviewed)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAnonymousReview_RoundTrips() {
	ctx := context.Background()
	r, err := review.NewProductReview(kernel.NewUUID(), kernel.NewUUID(),
		review.Author{Name: "Sam", Email: "sam@example.com"}, 3, "Fine", "It is fine", false, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, r))

	got, err := suite.repo.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.True(got.Author().IsAnonymous())
	suite.Equal("Sam", got.Author().Name)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestReviewRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
