// Package review lets customers rate products and vote on each other's
// reviews.
package review

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	MinScore       = 0
	MaxScore       = 5
	TitleMaxLength = 255
)

var (
	ErrReviewIsNotConstructed = errors.New("ProductReview must be created via NewProductReview constructor") //nolint:staticcheck,revive // matches the other aggregates

	ErrAlreadyReviewed  = errors.New("You have already reviewed this product!")   //nolint:staticcheck,revive // shown to customers
	ErrReviewNotAllowed = errors.New("You can't leave a review for this product.") //nolint:staticcheck,revive // shown to customers

	ErrOwnReview     = errors.New("You can't vote on your own reviews") //nolint:staticcheck,revive // shown to customers
	ErrAlreadyVoted  = errors.New("You can only vote once")             //nolint:staticcheck,revive // shown to customers
	ErrAnonymousVote = errors.New("Only signed in users can vote")      //nolint:staticcheck,revive // shown to customers
)

type Status int

const (
	ForModeration Status = iota
	Approved
	Rejected
)

func (s Status) String() string {
	switch s {
	case ForModeration:
		return "Requires moderation"
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s < ForModeration || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a review status", s))
	}
	return nil
}

// Author is who wrote a review: a user, or a name and email for anonymous
// reviews.
type Author struct {
	UserID *kernel.UUID
	Name   string
	Email  string
}

func (a Author) IsAnonymous() bool {
	return a.UserID == nil
}

// ProductReview is a customer's opinion of a product.
type ProductReview struct {
	id        kernel.UUID
	productID kernel.UUID
	author    Author
	score     int
	title     string
	body      string
	status    Status
	votes     []Vote
	createdAt time.Time

	isConstructed bool
}

// NewProductReview starts in moderation unless moderation is switched off.
func NewProductReview(
	id kernel.UUID,
	productID kernel.UUID,
	author Author,
	score int,
	title string,
	body string,
	moderate bool,
	createdAt time.Time,
) (*ProductReview, error) {
	status := Approved
	if moderate {
		status = ForModeration
	}
	return RestoreProductReview(id, productID, author, score, title, body, status, nil, createdAt)
}

func RestoreProductReview(
	id kernel.UUID,
	productID kernel.UUID,
	author Author,
	score int,
	title string,
	body string,
	status Status,
	votes []Vote,
	createdAt time.Time,
) (*ProductReview, error) {
	r := &ProductReview{
		votes:         slices.Clone(votes),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		status.Validate(),
		r.setAuthor(author),
		r.setScore(score),
		r.setText(title, body),
	); err != nil {
		return nil, err
	}
	r.id = id
	r.productID = productID
	r.status = status

	return r, nil
}

func (r *ProductReview) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *ProductReview) ID() kernel.UUID        { return r.id }
func (r *ProductReview) ProductID() kernel.UUID { return r.productID }
func (r *ProductReview) Author() Author         { return r.author }
func (r *ProductReview) Score() int             { return r.score }
func (r *ProductReview) Title() string          { return r.title }
func (r *ProductReview) Body() string           { return r.body }
func (r *ProductReview) Status() Status         { return r.status }
func (r *ProductReview) Votes() []Vote          { return slices.Clone(r.votes) }
func (r *ProductReview) CreatedAt() time.Time   { return r.createdAt }
func (r *ProductReview) IsApproved() bool       { return r.status == Approved }

// TotalVotes counts every vote cast.
func (r *ProductReview) TotalVotes() int {
	return len(r.votes)
}

// DeltaVotes is up votes minus down votes.
func (r *ProductReview) DeltaVotes() int {
	delta := 0
	for _, v := range r.votes {
		delta += v.Delta
	}
	return delta
}

func (r *ProductReview) Moderate(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// CanUserVote returns the reason a user may not vote, or nil.
func (r *ProductReview) CanUserVote(userID *kernel.UUID) error {
	switch {
	case userID == nil:
		return ErrAnonymousVote
	case r.author.UserID != nil && r.author.UserID.IsEqual(*userID):
		return ErrOwnReview
	}
	for _, v := range r.votes {
		if v.UserID.IsEqual(*userID) {
			return ErrAlreadyVoted
		}
	}
	return nil
}

func (r *ProductReview) VoteUp(userID *kernel.UUID, at time.Time) error {
	return r.vote(userID, VoteUp, at)
}

func (r *ProductReview) VoteDown(userID *kernel.UUID, at time.Time) error {
	return r.vote(userID, VoteDown, at)
}

func (r *ProductReview) vote(userID *kernel.UUID, delta int, at time.Time) error {
	if err := r.CanUserVote(userID); err != nil {
		return err
	}
	r.votes = append(r.votes, Vote{UserID: *userID, Delta: delta, CreatedAt: at.UTC()})
	return nil
}

func (r *ProductReview) setAuthor(a Author) error {
	a.Name, a.Email = strings.TrimSpace(a.Name), strings.TrimSpace(a.Email)
	if a.IsAnonymous() {
		var nameErr, emailErr error
		if a.Name == "" {
			nameErr = errs.NewValueIsRequiredError("name")
		}
		if a.Email == "" {
			emailErr = errs.NewValueIsRequiredError("email")
		} else if _, err := mail.ParseAddress(a.Email); err != nil {
			emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
		}
		if err := errors.Join(nameErr, emailErr); err != nil {
			return err
		}
	}
	r.author = a
	return nil
}

func (r *ProductReview) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}

func (r *ProductReview) setText(title string, body string) error {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	var titleErr, bodyErr error
	switch {
	case title == "":
		titleErr = errs.NewValueIsRequiredError("title")
	case len(title) > TitleMaxLength:
		titleErr = errs.NewValueIsOutOfRangeError("title length", len(title), 1, TitleMaxLength)
	}
	if body == "" {
		bodyErr = errs.NewValueIsRequiredError("body")
	}
	if err := errors.Join(titleErr, bodyErr); err != nil {
		return err
	}
	r.title, r.body = title, body
	return nil
}
