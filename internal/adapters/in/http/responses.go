package http

import (
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/generated/servers"
)

func newPrice(p kernel.Price) servers.Price {
	return servers.Price{
		Currency: p.Currency(),
		ExclTax:  p.ExclTax(),
		Tax:      p.Tax(),
		InclTax:  p.InclTax(),
	}
}

func newOptionalPrice(p *kernel.Price) *servers.Price {
	if p == nil {
		return nil
	}
	r := newPrice(*p)
	return &r
}

func newAvailability(a partner.Availability) servers.Availability {
	return servers.Availability{Code: a.Code(), Message: a.Message(), IsAvailableToBuy: a.IsAvailableToBuy()}
}

func newUser(u *user.User) servers.User {
	return servers.User{
		Id:          u.ID().Bytes(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		IsStaff:     u.IsStaff(),
		IsSuperuser: u.IsSuperuser(),
		DateJoined:  u.DateJoined(),
	}
}

func newBasket(b *basket.Basket) servers.Basket {
	lines := make([]servers.BasketLine, 0, b.NumLines())
	for _, l := range b.Lines() {
		lines = append(lines, servers.BasketLine{
			Id:        l.ID().Bytes(),
			ProductId: l.Product().ID().Bytes(),
			Title:     l.Product().Title(),
			Quantity:  l.Quantity(),
			UnitPrice: newPrice(l.UnitPrice()),
			LinePrice: newPrice(l.LinePrice()),
		})
	}
	return servers.Basket{
		Id:                 b.ID().Bytes(),
		Status:             b.Status().String(),
		Currency:           b.Currency(),
		Lines:              lines,
		NumItems:           b.NumItems(),
		IsShippingRequired: b.IsShippingRequired(),
		Total:              newPrice(b.Total()),
	}
}

func newUserAddress(a *address.UserAddress) servers.UserAddress {
	return servers.UserAddress{
		Id:                   a.ID().Bytes(),
		Address:              toAddress(a.Address().Fields()),
		Summary:              a.Address().Summary(),
		IsDefaultForShipping: a.IsDefaultForShipping(),
		IsDefaultForBilling:  a.IsDefaultForBilling(),
		NumOrdersAsShipping:  a.NumOrdersAsShipping(),
		NumOrdersAsBilling:   a.NumOrdersAsBilling(),
	}
}

func toAddress(f address.Fields) servers.Address {
	return servers.Address{
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
	}
}

func toOptionalAddress(f *address.Fields) *servers.Address {
	if f == nil {
		return nil
	}
	a := toAddress(*f)
	return &a
}

func addressFields(a *address.Address) *address.Fields {
	if a == nil {
		return nil
	}
	f := a.Fields()
	return &f
}

// fromAddress is the inverse of toAddress for submitted forms.
func fromAddress(a servers.Address) address.Fields {
	return address.Fields{
		Title:       a.Title,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Line1:       a.Line1,
		Line2:       a.Line2,
		Line3:       a.Line3,
		Line4:       a.Line4,
		State:       a.State,
		Postcode:    a.Postcode,
		Country:     a.Country,
		PhoneNumber: a.PhoneNumber,
		Notes:       a.Notes,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
	}
}

// newOrder shows customers only the notes meant for them.
func newOrder(o *order.Order, allNotes bool) servers.Order {
	lines := make([]servers.OrderLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, servers.OrderLine{
			ProductId:  l.ProductID().Bytes(),
			Title:      l.Title(),
			Upc:        l.UPC(),
			PartnerSku: l.PartnerSKU(),
			Quantity:   l.Quantity(),
			UnitPrice:  newPrice(l.UnitPrice()),
			LinePrice:  newPrice(l.LinePrice()),
		})
	}

	source := o.VisibleNotes()
	if allNotes {
		source = o.Notes()
	}
	notes := make([]servers.OrderNote, 0, len(source))
	for _, n := range source {
		notes = append(notes, servers.OrderNote{
			Id:                  n.ID().Bytes(),
			Message:             n.Message(),
			IsVisibleOnFrontend: n.IsVisibleOnFrontend(),
			AuthorId:            fromOptionalUUID(n.AuthorID()),
			CreatedAt:           n.CreatedAt(),
		})
	}

	return servers.Order{
		Id:                 o.ID().Bytes(),
		Number:             o.Number(),
		Status:             o.Status().String(),
		GuestEmail:         o.GuestEmail(),
		Currency:           o.Currency(),
		Lines:              lines,
		NumItems:           o.NumItems(),
		ShippingAddress:    toOptionalAddress(addressFields(o.ShippingAddress())),
		BillingAddress:     toOptionalAddress(addressFields(o.BillingAddress())),
		ShippingMethodCode: o.ShippingMethodCode(),
		ShippingMethodName: o.ShippingMethodName(),
		ShippingCharge:     newPrice(o.ShippingCharge()),
		PaymentMethodCode:  o.PaymentMethodCode(),
		PaymentCharge:      newPrice(o.PaymentCharge()),
		BasketTotal:        newPrice(o.BasketTotal()),
		Total:              newPrice(o.Total()),
		Notes:              notes,
		PlacedAt:           o.PlacedAt(),
	}
}
