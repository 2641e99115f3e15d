// Package addressrepo stores customers' address books.
package addressrepo

import (
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserAddressDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address              AddressDTO `gorm:"embedded"`
	IsDefaultForShipping bool       `gorm:"not null;default:false"`
	IsDefaultForBilling  bool       `gorm:"not null;default:false"`
	NumOrdersAsShipping  int        `gorm:"not null;default:0"`
	NumOrdersAsBilling   int        `gorm:"not null;default:0"`
	CreatedAt            time.Time  `gorm:"not null"`
}

func (UserAddressDTO) TableName() string {
	return "user_addresses"
}

type AddressDTO struct {
	Title       string   `gorm:"type:varchar(64)"`
	FirstName   string   `gorm:"type:varchar(255)"`
	LastName    string   `gorm:"type:varchar(255)"`
	Line1       string   `gorm:"column:line1;type:varchar(255);not null"`
	Line2       string   `gorm:"column:line2;type:varchar(255)"`
	Line3       string   `gorm:"column:line3;type:varchar(255)"`
	Line4       string   `gorm:"column:line4;type:varchar(255)"`
	State       string   `gorm:"type:varchar(255)"`
	Postcode    string   `gorm:"type:varchar(64)"`
	Country     string   `gorm:"type:char(2);not null"`
	PhoneNumber string   `gorm:"type:varchar(32)"`
	Notes       string   `gorm:"type:text"`
	Latitude    *float64
	Longitude   *float64
}

func fromDomain(a *address.UserAddress) UserAddressDTO {
	f := a.Address().Fields()
	return UserAddressDTO{
		ID:     a.ID().Bytes(),
		UserID: a.UserID().Bytes(),
		Address: AddressDTO{
			Title:       f.Title,
			FirstName:   f.FirstName,
			LastName:    f.LastName,
			Line1:       f.Line1,
			Line2:       f.Line2,
			Line3:       f.Line3,
			Line4:       f.Line4,
			State:       f.State,
			Postcode:    f.Postcode,
			Country:     f.Country,
			PhoneNumber: f.PhoneNumber,
			Notes:       f.Notes,
			Latitude:    f.Latitude,
			Longitude:   f.Longitude,
		},
		IsDefaultForShipping: a.IsDefaultForShipping(),
		IsDefaultForBilling:  a.IsDefaultForBilling(),
		NumOrdersAsShipping:  a.NumOrdersAsShipping(),
		NumOrdersAsBilling:   a.NumOrdersAsBilling(),
		CreatedAt:            a.CreatedAt(),
	}
}

func toDomain(dto UserAddressDTO) (*address.UserAddress, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	addr, err := address.NewAddress(address.Fields(dto.Address))
	if err != nil {
		return nil, err
	}
	return address.RestoreUserAddress(id, userID, addr, dto.IsDefaultForShipping, dto.IsDefaultForBilling,
		dto.NumOrdersAsShipping, dto.NumOrdersAsBilling, dto.CreatedAt)
}
