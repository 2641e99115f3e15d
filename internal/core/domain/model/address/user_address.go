package address

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

var ErrUserAddressIsNotConstructed = errors.New("UserAddress must be created via NewUserAddress")

// UserAddress is an address book entry.
type UserAddress struct {
	id                   kernel.UUID
	userID               kernel.UUID
	address              Address
	isDefaultForShipping bool
	isDefaultForBilling  bool
	numOrdersAsShipping  int
	numOrdersAsBilling   int
	createdAt            time.Time

	isConstructed bool
}

func NewUserAddress(id kernel.UUID, userID kernel.UUID, addr Address) (*UserAddress, error) {
	return RestoreUserAddress(id, userID, addr, false, false, 0, 0, time.Now().UTC())
}

func RestoreUserAddress(
	id kernel.UUID,
	userID kernel.UUID,
	addr Address,
	isDefaultForShipping bool,
	isDefaultForBilling bool,
	numOrdersAsShipping int,
	numOrdersAsBilling int,
	createdAt time.Time,
) (*UserAddress, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), addr.Validate()); err != nil {
		return nil, err
	}

	return &UserAddress{
		id:                   id,
		userID:               userID,
		address:              addr,
		isDefaultForShipping: isDefaultForShipping,
		isDefaultForBilling:  isDefaultForBilling,
		numOrdersAsShipping:  numOrdersAsShipping,
		numOrdersAsBilling:   numOrdersAsBilling,
		createdAt:            createdAt,
		isConstructed:        true,
	}, nil
}

func (u *UserAddress) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserAddressIsNotConstructed
	}
	return nil
}

func (u *UserAddress) ID() kernel.UUID {
	return u.id
}

func (u *UserAddress) UserID() kernel.UUID {
	return u.userID
}

func (u *UserAddress) Address() Address {
	return u.address
}

func (u *UserAddress) IsDefaultForShipping() bool {
	return u.isDefaultForShipping
}

func (u *UserAddress) IsDefaultForBilling() bool {
	return u.isDefaultForBilling
}

func (u *UserAddress) NumOrdersAsShipping() int {
	return u.numOrdersAsShipping
}

func (u *UserAddress) NumOrdersAsBilling() int {
	return u.numOrdersAsBilling
}

func (u *UserAddress) CreatedAt() time.Time {
	return u.createdAt
}

func (u *UserAddress) SetDefaultForShipping(isDefault bool) {
	u.isDefaultForShipping = isDefault
}

func (u *UserAddress) SetDefaultForBilling(isDefault bool) {
	u.isDefaultForBilling = isDefault
}

// RecordUsage counts an order that shipped or billed to this entry.
func (u *UserAddress) RecordUsage(asShipping bool, asBilling bool) {
	if asShipping {
		u.numOrdersAsShipping++
	}
	if asBilling {
		u.numOrdersAsBilling++
	}
}

func (u *UserAddress) BelongsTo(userID kernel.UUID) bool {
	return u.userID.IsEqual(userID)
}

// DefaultForBilling picks the entry flagged as default for billing, falling
// back to the first entry. It returns nil for an empty book.
func DefaultForBilling(book []*UserAddress) *UserAddress {
	for _, a := range book {
		if a.IsDefaultForBilling() {
			return a
		}
	}
	if len(book) > 0 {
		return book[0]
	}
	return nil
}
