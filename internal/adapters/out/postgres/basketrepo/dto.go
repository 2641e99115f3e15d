// Package basketrepo stores baskets and their lines.
package basketrepo

import (
	"time"

	"storefront/internal/adapters/out/postgres/cataloguerepo"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BasketDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     *uuid.UUID      `gorm:"type:uuid;index"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	Currency    string          `gorm:"type:char(3);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	SubmittedAt *time.Time
	Lines       []BasketLineDTO `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

func (BasketDTO) TableName() string {
	return "baskets"
}

type BasketLineDTO struct {
	ID            uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	BasketID      uuid.UUID                     `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Product       *cataloguerepo.ProductDTO     `gorm:"foreignKey:ProductID"`
	StockRecordID uuid.UUID                     `gorm:"type:uuid;not null"`
	StockRecord   *cataloguerepo.StockRecordDTO `gorm:"foreignKey:StockRecordID"`
	Position      int                           `gorm:"not null"`
	Quantity      int                           `gorm:"not null"`
	PriceExclTax  decimal.Decimal               `gorm:"type:numeric(12,2);not null"`
	PriceTax      decimal.Decimal               `gorm:"type:numeric(12,2);not null"`
}

func (BasketLineDTO) TableName() string {
	return "basket_lines"
}

func fromDomain(b *basket.Basket) BasketDTO {
	var ownerID *uuid.UUID
	if id := b.OwnerID(); id != nil {
		raw := id.Bytes()
		ownerID = &raw
	}

	lines := make([]BasketLineDTO, 0, b.NumLines())
	for i, l := range b.Lines() {
		lines = append(lines, BasketLineDTO{
			ID:            l.ID().Bytes(),
			BasketID:      b.ID().Bytes(),
			ProductID:     l.Product().ID().Bytes(),
			StockRecordID: l.StockRecord().ID().Bytes(),
			Position:      i,
			Quantity:      l.Quantity(),
			PriceExclTax:  l.UnitPrice().ExclTax(),
			PriceTax:      l.UnitPrice().Tax(),
		})
	}

	return BasketDTO{
		ID:          b.ID().Bytes(),
		OwnerID:     ownerID,
		Status:      b.Status().String(),
		Currency:    b.Currency(),
		CreatedAt:   b.CreatedAt(),
		SubmittedAt: b.SubmittedAt(),
		Lines:       lines,
	}
}

func toDomain(dto BasketDTO) (*basket.Basket, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		oID, ownerErr := kernel.UUIDFromGoogle(*dto.OwnerID)
		if ownerErr != nil {
			return nil, ownerErr
		}
		ownerID = &oID
	}
	status, err := basket.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*basket.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(dto.Currency, l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return basket.RestoreBasket(id, ownerID, status, dto.Currency, lines, dto.CreatedAt, dto.SubmittedAt)
}

func lineToDomain(currency string, dto BasketLineDTO) (*basket.Line, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	if dto.Product == nil || dto.StockRecord == nil {
		return nil, errMissingAssociation
	}
	product, err := cataloguerepo.ProductToDomain(*dto.Product)
	if err != nil {
		return nil, err
	}
	record, err := cataloguerepo.StockRecordToDomain(*dto.StockRecord)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(currency, dto.PriceExclTax, dto.PriceTax)
	if err != nil {
		return nil, err
	}
	return basket.RestoreLine(id, product, record, dto.Quantity, price), nil
}
