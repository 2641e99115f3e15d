package commands

import (
	"errors"
	"maps"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// StockInput is the partner offer created alongside a product.
type StockInput struct {
	StockRecordID kernel.UUID
	PartnerSKU    string
	Currency      string
	PriceExclTax  decimal.Decimal
	NumInStock    int
}

// CreateProductCommand adds a product to the catalogue together with the
// stock record it is sold from.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID          kernel.UUID
	title              string
	upc                string
	description        string
	isShippingRequired bool
	attributes         map[string]string
	stock              StockInput

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	title string,
	upc string,
	description string,
	isShippingRequired bool,
	attributes map[string]string,
	stock StockInput,
) (CreateProductCommand, error) {
	c := CreateProductCommand{
		upc:                strings.TrimSpace(upc),
		description:        description,
		isShippingRequired: isShippingRequired,
		attributes:         maps.Clone(attributes),
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productID.Validate(),
		c.setTitle(title),
		c.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}
	c.productID = productID

	return c, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID        { return c.productID }
func (c CreateProductCommand) Title() string                 { return c.title }
func (c CreateProductCommand) UPC() string                   { return c.upc }
func (c CreateProductCommand) Description() string           { return c.description }
func (c CreateProductCommand) IsShippingRequired() bool      { return c.isShippingRequired }
func (c CreateProductCommand) Attributes() map[string]string { return maps.Clone(c.attributes) }
func (c CreateProductCommand) Stock() StockInput             { return c.stock }

func (c *CreateProductCommand) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateProductCommand) setStock(stock StockInput) error {
	if err := stock.StockRecordID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(stock.PartnerSKU) == "" {
		return errs.NewValueIsRequiredError("partner sku")
	}
	if err := kernel.ValidateCurrency(stock.Currency); err != nil {
		return err
	}
	c.stock = stock
	return nil
}
