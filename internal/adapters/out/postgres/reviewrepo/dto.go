// Package reviewrepo stores product reviews with their votes.
package reviewrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_product_user,where:user_id IS NOT NULL"`
	UserID    *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_reviews_product_user,where:user_id IS NOT NULL"`
	Name      string     `gorm:"type:varchar(255);not null;default:''"`
	Email     string     `gorm:"type:varchar(254);not null;default:''"`
	Score     int        `gorm:"type:smallint;not null"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Body      string     `gorm:"type:text;not null"`
	Status    int        `gorm:"type:smallint;not null;index"`
	Votes     []VoteDTO  `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

type VoteDTO struct {
	ReviewID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Delta     int       `gorm:"type:smallint;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (VoteDTO) TableName() string {
	return "review_votes"
}

func fromDomain(r *review.ProductReview) ReviewDTO {
	author := r.Author()
	dto := ReviewDTO{
		ID:        r.ID().Bytes(),
		ProductID: r.ProductID().Bytes(),
		Name:      author.Name,
		Email:     author.Email,
		Score:     r.Score(),
		Title:     r.Title(),
		Body:      r.Body(),
		Status:    int(r.Status()),
		CreatedAt: r.CreatedAt(),
	}
	if author.UserID != nil {
		userID := author.UserID.Bytes()
		dto.UserID = &userID
	}
	for _, v := range r.Votes() {
		dto.Votes = append(dto.Votes, VoteDTO{
			ReviewID:  dto.ID,
			UserID:    v.UserID.Bytes(),
			Delta:     v.Delta,
			CreatedAt: v.CreatedAt,
		})
	}
	return dto
}

func toDomain(dto ReviewDTO) (*review.ProductReview, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return nil, err
	}
	author := review.Author{Name: dto.Name, Email: dto.Email}
	if dto.UserID != nil {
		userID, idErr := kernel.UUIDFromGoogle(*dto.UserID)
		if idErr != nil {
			return nil, idErr
		}
		author.UserID = &userID
	}

	votes := make([]review.Vote, 0, len(dto.Votes))
	for _, v := range dto.Votes {
		voter, voterErr := kernel.UUIDFromGoogle(v.UserID)
		if voterErr != nil {
			return nil, voterErr
		}
		votes = append(votes, review.Vote{UserID: voter, Delta: v.Delta, CreatedAt: v.CreatedAt})
	}

	return review.RestoreProductReview(
		id, productID, author, dto.Score, dto.Title, dto.Body, review.Status(dto.Status), votes, dto.CreatedAt,
	)
}
