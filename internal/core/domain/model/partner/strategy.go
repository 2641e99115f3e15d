package partner

import (
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TaxPolicy computes the tax owed on a tax-exclusive amount.
type TaxPolicy interface {
	Tax(exclTax decimal.Decimal) decimal.Decimal
}

// NoTax charges nothing. Shops that price tax-inclusive or sell outside of
// any tax regime use it.
type NoTax struct{}

func (NoTax) Tax(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// FixedRateTax charges Rate (0.2 for 20%) on every amount.
type FixedRateTax struct {
	Rate decimal.Decimal
}

func (t FixedRateTax) Tax(exclTax decimal.Decimal) decimal.Decimal {
	return exclTax.Mul(t.Rate).Round(2)
}

// PurchaseInfo is what a strategy knows about buying one product.
type PurchaseInfo struct {
	// Price is nil when no stock record offers the product.
	Price        *kernel.Price
	Availability Availability
	StockRecord  *StockRecord
}

// Strategy selects a stock record for a product and prices it.
type Strategy struct {
	tax TaxPolicy
}

func NewStrategy(tax TaxPolicy) Strategy {
	if tax == nil {
		tax = NoTax{}
	}
	return Strategy{tax: tax}
}

// FetchForProduct picks the first stock record. Disabled products and
// products without stock records are unavailable.
func (s Strategy) FetchForProduct(product *catalogue.Product, records []*StockRecord) PurchaseInfo {
	if len(records) == 0 {
		return PurchaseInfo{Availability: Unavailable()}
	}

	return s.FetchForStockRecord(product, records[0])
}

// FetchForStockRecord prices a specific stock record, as basket lines do.
func (s Strategy) FetchForStockRecord(product *catalogue.Product, record *StockRecord) PurchaseInfo {
	if record == nil || record.Validate() != nil {
		return PurchaseInfo{Availability: Unavailable()}
	}

	info := PurchaseInfo{StockRecord: record}
	if price, err := kernel.NewPrice(record.Currency(), record.PriceExclTax(), s.tax.Tax(record.PriceExclTax())); err == nil {
		info.Price = &price
	}

	if product == nil || product.Validate() != nil || !product.IsEnabled() {
		info.Availability = Unavailable()
		return info
	}
	info.Availability = StockRequired(record.NetStockLevel())

	return info
}
