// Package shippingrepo stores the shipping methods managed from the
// dashboard. Both kinds share one table; weight bands live in their own.
package shippingrepo

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type MethodDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind        string         `gorm:"type:varchar(32);not null"`
	Code        string         `gorm:"type:varchar(128);not null;uniqueIndex"`
	Name        string         `gorm:"type:varchar(128);not null"`
	Description string         `gorm:"type:text;not null;default:''"`
	Countries   pq.StringArray `gorm:"type:text[]"`
	IsEnabled   bool           `gorm:"not null;default:true"`

	// order and item charges
	PricePerOrder         decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	PricePerItem          decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	FreeShippingThreshold *decimal.Decimal `gorm:"type:numeric(12,2)"`

	// weight based
	DefaultWeight decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	Bands         []WeightBandDTO `gorm:"foreignKey:MethodID;constraint:OnDelete:CASCADE"`
}

func (MethodDTO) TableName() string {
	return "shipping_methods"
}

type WeightBandDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MethodID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UpperLimit decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Charge     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (WeightBandDTO) TableName() string {
	return "shipping_weight_bands"
}

func fromDomain(m shipping.Configured) MethodDTO {
	dto := MethodDTO{
		ID:          m.ID().Bytes(),
		Kind:        string(m.Kind()),
		Code:        m.Code(),
		Name:        m.Name(),
		Description: m.Description(),
		Countries:   pq.StringArray(m.Countries()),
		IsEnabled:   m.IsEnabled(),
	}

	switch method := m.(type) {
	case *shipping.OrderAndItemCharges:
		dto.PricePerOrder = method.PricePerOrder()
		dto.PricePerItem = method.PricePerItem()
		dto.FreeShippingThreshold = method.FreeShippingThreshold()
	case *shipping.WeightBased:
		dto.DefaultWeight = method.DefaultWeight()
		for _, b := range method.Bands() {
			dto.Bands = append(dto.Bands, WeightBandDTO{
				ID:         b.ID().Bytes(),
				MethodID:   dto.ID,
				UpperLimit: b.UpperLimit(),
				Charge:     b.Charge(),
			})
		}
	}
	return dto
}

func toDomain(dto MethodDTO) (shipping.Configured, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	cfg, err := shipping.RestoreConfiguration(id, dto.Code, dto.Name, dto.Description, dto.Countries, dto.IsEnabled)
	if err != nil {
		return nil, err
	}

	switch shipping.Kind(dto.Kind) {
	case shipping.KindOrderAndItemCharges:
		return shipping.NewOrderAndItemCharges(cfg, dto.PricePerOrder, dto.PricePerItem, dto.FreeShippingThreshold)
	case shipping.KindWeightBased:
		bands := make([]*shipping.WeightBand, 0, len(dto.Bands))
		for _, b := range dto.Bands {
			bandID, idErr := kernel.UUIDFromGoogle(b.ID)
			if idErr != nil {
				return nil, idErr
			}
			band, bandErr := shipping.NewWeightBand(bandID, b.UpperLimit, b.Charge)
			if bandErr != nil {
				return nil, bandErr
			}
			bands = append(bands, band)
		}
		return shipping.NewWeightBased(cfg, dto.DefaultWeight, bands...)
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a shipping method kind", dto.Kind))
}
