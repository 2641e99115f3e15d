package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists the catalogue. The storefront only sees enabled
// products; the dashboard sees everything.
type GetProductsQuery struct {
	page        Page
	search      string
	enabledOnly bool

	guard guard.ConstructorGuard
}

func NewGetProductsQuery(page Page, search string, enabledOnly bool) GetProductsQuery {
	return GetProductsQuery{
		page:        page,
		search:      strings.TrimSpace(search),
		enabledOnly: enabledOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Page() Page        { return q.page }
func (q GetProductsQuery) Search() string    { return q.search }
func (q GetProductsQuery) EnabledOnly() bool { return q.enabledOnly }

// GetProductsQueryResponse carries the price and stock of the product's
// first stock record, when it has one.
type GetProductsQueryResponse struct {
	ID                 kernel.UUID
	Title              string
	UPC                string
	IsEnabled          bool
	IsShippingRequired bool
	Currency           *string
	PriceExclTax       *decimal.Decimal
	NetStockLevel      *int
}
