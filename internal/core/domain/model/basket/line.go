package basket

import (
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
)

// Line is one product in a basket.
type Line struct {
	id          kernel.UUID
	product     *catalogue.Product
	stockRecord *partner.StockRecord
	quantity    int
	unitPrice   kernel.Price
}

// RestoreLine rebuilds a line from storage.
func RestoreLine(
	id kernel.UUID,
	product *catalogue.Product,
	stockRecord *partner.StockRecord,
	quantity int,
	unitPrice kernel.Price,
) *Line {
	return &Line{
		id:          id,
		product:     product,
		stockRecord: stockRecord,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) Product() *catalogue.Product {
	return l.product
}

func (l *Line) StockRecord() *partner.StockRecord {
	return l.stockRecord
}

func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice is the price of a single item when the line was last updated.
func (l *Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

func (l *Line) LinePrice() kernel.Price {
	return l.unitPrice.Multiply(l.quantity)
}

func (l *Line) matches(product *catalogue.Product, record *partner.StockRecord) bool {
	return l.product.ID().IsEqual(product.ID()) && l.stockRecord.ID().IsEqual(record.ID())
}
