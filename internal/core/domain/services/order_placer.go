package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"
)

var ErrBasketIsEmpty = errors.New("basket is empty")

// Placement is the checkout outcome an order is built from.
type Placement struct {
	OrderID            kernel.UUID
	Number             string
	UserID             *kernel.UUID
	GuestEmail         string
	ShippingAddress    *address.Address
	BillingAddress     *address.Address
	ShippingMethodCode string
	ShippingMethodName string
	ShippingCharge     kernel.Price
	PaymentMethodCode  string
	PaymentCharge      kernel.Price
	Total              kernel.Price
	PlacedAt           time.Time
}

// Allocation is the stock one order takes from one record.
type Allocation struct {
	StockRecordID kernel.UUID
	Quantity      int
}

// OrderPlacer converts a basket into an order.
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place allocates stock for every line, builds the order and submits the
// basket. The allocations are returned, one per stock record, so the caller
// can apply them to storage. On error neither the basket nor any stock
// record is left changed.
func (OrderPlacer) Place(b *basket.Basket, p Placement) (*order.Order, []Allocation, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	if b.IsEmpty() {
		return nil, nil, ErrBasketIsEmpty
	}
	if b.Status() == basket.Submitted {
		return nil, nil, errs.NewStateIsInvalidError("basket", b.Status().String())
	}

	lines := make([]order.Line, 0, b.NumLines())
	records := make([]*partner.StockRecord, 0, b.NumLines())
	allocated := make(map[*partner.StockRecord]int, b.NumLines())
	rollback := func() {
		for record, qty := range allocated {
			record.CancelAllocation(qty)
		}
	}

	for _, l := range b.Lines() {
		record := l.StockRecord()
		if err := record.Allocate(l.Quantity()); err != nil {
			rollback()
			return nil, nil, fmt.Errorf("allocating %q: %w", l.Product().Title(), err)
		}
		if _, seen := allocated[record]; !seen {
			records = append(records, record)
		}
		allocated[record] += l.Quantity()

		line, err := order.NewLine(
			kernel.NewUUID(),
			l.Product().ID(),
			record.ID(),
			l.Product().Title(),
			l.Product().UPC(),
			record.PartnerSKU(),
			l.Quantity(),
			l.UnitPrice(),
		)
		if err != nil {
			rollback()
			return nil, nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(p.OrderID, order.Details{
		Number:             p.Number,
		BasketID:           b.ID(),
		UserID:             p.UserID,
		GuestEmail:         p.GuestEmail,
		Currency:           b.Currency(),
		Lines:              lines,
		ShippingAddress:    p.ShippingAddress,
		BillingAddress:     p.BillingAddress,
		ShippingMethodCode: p.ShippingMethodCode,
		ShippingMethodName: p.ShippingMethodName,
		ShippingCharge:     p.ShippingCharge,
		PaymentMethodCode:  p.PaymentMethodCode,
		PaymentCharge:      p.PaymentCharge,
		Total:              p.Total,
	}, p.PlacedAt)
	if err != nil {
		rollback()
		return nil, nil, err
	}

	if err := b.Submit(); err != nil {
		rollback()
		return nil, nil, err
	}

	allocations := make([]Allocation, 0, len(records))
	for _, record := range records {
		allocations = append(allocations, Allocation{StockRecordID: record.ID(), Quantity: allocated[record]})
	}
	return o, allocations, nil
}
