package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Line is a snapshot of a basket line taken when the order was placed.
type Line struct {
	id            kernel.UUID
	productID     kernel.UUID
	stockRecordID kernel.UUID
	title         string
	upc           string
	partnerSKU    string
	quantity      int
	unitPrice     kernel.Price
}

func NewLine(
	id kernel.UUID,
	productID kernel.UUID,
	stockRecordID kernel.UUID,
	title string,
	upc string,
	partnerSKU string,
	quantity int,
	unitPrice kernel.Price,
) (Line, error) {
	var titleErr, quantityErr error
	if strings.TrimSpace(title) == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "∞")
	}
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		stockRecordID.Validate(),
		titleErr,
		quantityErr,
		unitPrice.Validate(),
	); err != nil {
		return Line{}, err
	}

	return Line{
		id:            id,
		productID:     productID,
		stockRecordID: stockRecordID,
		title:         strings.TrimSpace(title),
		upc:           upc,
		partnerSKU:    partnerSKU,
		quantity:      quantity,
		unitPrice:     unitPrice,
	}, nil
}

func (l Line) ID() kernel.UUID            { return l.id }
func (l Line) ProductID() kernel.UUID     { return l.productID }
func (l Line) StockRecordID() kernel.UUID { return l.stockRecordID }
func (l Line) Title() string              { return l.title }
func (l Line) UPC() string                { return l.upc }
func (l Line) PartnerSKU() string         { return l.partnerSKU }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) UnitPrice() kernel.Price    { return l.unitPrice }

func (l Line) LinePrice() kernel.Price {
	return l.unitPrice.Multiply(l.quantity)
}
