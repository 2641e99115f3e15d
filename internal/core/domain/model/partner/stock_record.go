package partner

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrStockRecordIsNotConstructed = errors.New("StockRecord must be created via NewStockRecord or RestoreStockRecord")

// ErrInsufficientStock is returned when stock sold meanwhile leaves too
// little to allocate.
var ErrInsufficientStock = errors.New("not enough stock left to allocate")

// StockRecord is one partner's offer for a product: a price and a stock level.
type StockRecord struct {
	id           kernel.UUID
	productID    kernel.UUID
	partnerSKU   string
	currency     string
	priceExclTax decimal.Decimal
	numInStock   int
	numAllocated int

	isConstructed bool
}

func NewStockRecord(
	id kernel.UUID,
	productID kernel.UUID,
	partnerSKU string,
	currency string,
	priceExclTax decimal.Decimal,
	numInStock int,
) (*StockRecord, error) {
	return RestoreStockRecord(id, productID, partnerSKU, currency, priceExclTax, numInStock, 0)
}

func RestoreStockRecord(
	id kernel.UUID,
	productID kernel.UUID,
	partnerSKU string,
	currency string,
	priceExclTax decimal.Decimal,
	numInStock int,
	numAllocated int,
) (*StockRecord, error) {
	sr := &StockRecord{isConstructed: true}

	if err := errors.Join(
		sr.setID(id),
		sr.setProductID(productID),
		sr.setPartnerSKU(partnerSKU),
		kernel.ValidateCurrency(currency),
		sr.setPrice(priceExclTax),
		sr.setStock(numInStock, numAllocated),
	); err != nil {
		return nil, err
	}
	sr.currency = currency

	return sr, nil
}

func (s *StockRecord) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockRecordIsNotConstructed
	}
	return nil
}

func (s *StockRecord) ID() kernel.UUID {
	return s.id
}

func (s *StockRecord) ProductID() kernel.UUID {
	return s.productID
}

func (s *StockRecord) PartnerSKU() string {
	return s.partnerSKU
}

func (s *StockRecord) Currency() string {
	return s.currency
}

func (s *StockRecord) PriceExclTax() decimal.Decimal {
	return s.priceExclTax
}

func (s *StockRecord) NumInStock() int {
	return s.numInStock
}

func (s *StockRecord) NumAllocated() int {
	return s.numAllocated
}

// NetStockLevel is the number of items that can still be sold.
func (s *StockRecord) NetStockLevel() int {
	return s.numInStock - s.numAllocated
}

// Allocate reserves quantity items for a placed order.
func (s *StockRecord) Allocate(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > s.NetStockLevel() {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, s.NetStockLevel())
	}
	s.numAllocated += quantity
	return nil
}

// CancelAllocation releases a previous allocation, for instance when an
// order is cancelled.
func (s *StockRecord) CancelAllocation(quantity int) {
	s.numAllocated = max(s.numAllocated-quantity, 0)
}

// Restock sets the physical stock level.
func (s *StockRecord) Restock(numInStock int) error {
	return s.setStock(numInStock, s.numAllocated)
}

func (s *StockRecord) UpdatePrice(priceExclTax decimal.Decimal) error {
	return s.setPrice(priceExclTax)
}

func (s *StockRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StockRecord) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.productID = id
	return nil
}

func (s *StockRecord) setPartnerSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("partner_sku")
	}
	s.partnerSKU = sku
	return nil
}

func (s *StockRecord) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price_excl_tax", fmt.Errorf("%s is negative", price))
	}
	s.priceExclTax = price
	return nil
}

func (s *StockRecord) setStock(numInStock int, numAllocated int) error {
	if numInStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("num_in_stock", fmt.Errorf("%d is negative", numInStock))
	}
	if numAllocated < 0 {
		return errs.NewValueIsInvalidErrorWithCause("num_allocated", fmt.Errorf("%d is negative", numAllocated))
	}
	s.numInStock = numInStock
	s.numAllocated = numAllocated
	return nil
}
