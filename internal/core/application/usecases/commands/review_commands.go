package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateReviewCommandIsNotConstructed = errors.New(
		"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
	)
	ErrVoteOnReviewCommandIsNotConstructed = errors.New(
		"VoteOnReviewCommand must be created via NewVoteOnReviewCommand constructor",
	)
	ErrModerateReviewCommandIsNotConstructed = errors.New(
		"ModerateReviewCommand must be created via NewModerateReviewCommand constructor",
	)
)

// ReviewSettings come from the reviews section of the configuration.
type ReviewSettings struct {
	AllowAnonymous bool
	Moderate       bool
}

type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	productID kernel.UUID
	author    review.Author
	score     int
	title     string
	body      string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	reviewID kernel.UUID,
	productID kernel.UUID,
	author review.Author,
	score int,
	title string,
	body string,
) (CreateReviewCommand, error) {
	if err := errors.Join(reviewID.Validate(), productID.Validate()); err != nil {
		return CreateReviewCommand{}, err
	}
	return CreateReviewCommand{
		reviewID:  reviewID,
		productID: productID,
		author:    author,
		score:     score,
		title:     title,
		body:      body,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

type VoteOnReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	userID   *kernel.UUID
	delta    int

	guard guard.ConstructorGuard
}

// NewVoteOnReviewCommand takes review.VoteUp or review.VoteDown. The user is
// nil for anonymous visitors, who are turned away by the handler.
func NewVoteOnReviewCommand(reviewID kernel.UUID, userID *kernel.UUID, delta int) (VoteOnReviewCommand, error) {
	var deltaErr error
	if delta != review.VoteUp && delta != review.VoteDown {
		deltaErr = errs.NewValueIsInvalidErrorWithCause("vote", fmt.Errorf("%d is neither up nor down", delta))
	}
	if err := errors.Join(reviewID.Validate(), deltaErr); err != nil {
		return VoteOnReviewCommand{}, err
	}
	return VoteOnReviewCommand{reviewID: reviewID, userID: userID, delta: delta, guard: guard.NewConstructorGuard()}, nil
}

func (c VoteOnReviewCommand) Validate() error {
	return c.guard.Validate(ErrVoteOnReviewCommandIsNotConstructed)
}

type ModerateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	status   review.Status

	guard guard.ConstructorGuard
}

func NewModerateReviewCommand(reviewID kernel.UUID, status review.Status) (ModerateReviewCommand, error) {
	if err := errors.Join(reviewID.Validate(), status.Validate()); err != nil {
		return ModerateReviewCommand{}, err
	}
	return ModerateReviewCommand{reviewID: reviewID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ModerateReviewCommand) Validate() error {
	return c.guard.Validate(ErrModerateReviewCommandIsNotConstructed)
}

type ReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	settings   ReviewSettings
}

func NewReviewCommandHandler(uowFactory ReviewUoWFactory, settings ReviewSettings) ReviewCommandHandler {
	return ReviewCommandHandler{uowFactory: uowFactory, settings: settings}
}

// HandleCreate stores a review, approved straight away unless moderation is
// on.
func (h ReviewCommandHandler) HandleCreate(ctx context.Context, cmd CreateReviewCommand) (*review.ProductReview, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := review.NewProductReview(cmd.reviewID, cmd.productID, cmd.author, cmd.score, cmd.title, cmd.body,
		h.settings.Moderate, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReviewRepository()
	hasReviewed := false
	if uid := cmd.author.UserID; uid != nil {
		if hasReviewed, err = repo.HasReviewBy(ctx, cmd.productID, *uid); err != nil {
			return nil, err
		}
	}
	if err = review.CheckPermitted(cmd.author.UserID, h.settings.AllowAnonymous, hasReviewed); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (h ReviewCommandHandler) HandleVote(ctx context.Context, cmd VoteOnReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.reviewID, func(r *review.ProductReview) error {
		if cmd.delta == review.VoteUp {
			return r.VoteUp(cmd.userID, time.Now())
		}
		return r.VoteDown(cmd.userID, time.Now())
	})
}

func (h ReviewCommandHandler) HandleModerate(ctx context.Context, cmd ModerateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.reviewID, func(r *review.ProductReview) error {
		return r.Moderate(cmd.status)
	})
}

func (h ReviewCommandHandler) edit(ctx context.Context, reviewID kernel.UUID, change func(*review.ProductReview) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReviewRepository()
	r, err := repo.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if err = change(r); err != nil {
		return err
	}
	if err = repo.Update(ctx, r); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
