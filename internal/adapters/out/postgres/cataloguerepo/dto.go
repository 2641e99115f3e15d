// Package cataloguerepo stores products and their partner stock records.
package cataloguerepo

import (
	"time"

	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Title              string            `gorm:"type:varchar(255);not null"`
	UPC                *string           `gorm:"column:upc;type:varchar(64);uniqueIndex"`
	Description        string            `gorm:"type:text;not null;default:''"`
	IsShippingRequired bool              `gorm:"not null;default:true"`
	IsEnabled          bool              `gorm:"not null;default:true;index"`
	Attributes         map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt          time.Time         `gorm:"not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type StockRecordDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Product      *ProductDTO     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	PartnerSKU   string          `gorm:"column:partner_sku;type:varchar(128);not null"`
	Currency     string          `gorm:"type:char(3);not null"`
	PriceExclTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NumInStock   int             `gorm:"not null;default:0"`
	NumAllocated int             `gorm:"not null;default:0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

func (StockRecordDTO) TableName() string {
	return "stock_records"
}

// ProductFromDomain is shared with the basket repository, which stores
// lines against products.
func ProductFromDomain(p *catalogue.Product) ProductDTO {
	var upc *string
	if p.UPC() != "" {
		v := p.UPC()
		upc = &v
	}
	return ProductDTO{
		ID:                 p.ID().Bytes(),
		Title:              p.Title(),
		UPC:                upc,
		Description:        p.Description(),
		IsShippingRequired: p.IsShippingRequired(),
		IsEnabled:          p.IsEnabled(),
		Attributes:         p.Attributes(),
		CreatedAt:          p.CreatedAt(),
	}
}

func ProductToDomain(dto ProductDTO) (*catalogue.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	upc := ""
	if dto.UPC != nil {
		upc = *dto.UPC
	}
	return catalogue.RestoreProduct(id, dto.Title, upc, dto.Description, dto.IsShippingRequired, dto.IsEnabled,
		dto.Attributes, dto.CreatedAt)
}

func StockRecordFromDomain(sr *partner.StockRecord) StockRecordDTO {
	return StockRecordDTO{
		ID:           sr.ID().Bytes(),
		ProductID:    sr.ProductID().Bytes(),
		PartnerSKU:   sr.PartnerSKU(),
		Currency:     sr.Currency(),
		PriceExclTax: sr.PriceExclTax(),
		NumInStock:   sr.NumInStock(),
		NumAllocated: sr.NumAllocated(),
	}
}

func StockRecordToDomain(dto StockRecordDTO) (*partner.StockRecord, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return nil, err
	}
	return partner.RestoreStockRecord(id, productID, dto.PartnerSKU, dto.Currency, dto.PriceExclTax,
		dto.NumInStock, dto.NumAllocated)
}
