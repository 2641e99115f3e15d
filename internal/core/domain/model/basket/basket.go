package basket

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"
)

var ErrBasketIsNotConstructed = errors.New("Basket must be created via NewBasket or RestoreBasket")

// Basket is the aggregate root for a customer's in-progress purchase.
type Basket struct {
	id            kernel.UUID
	ownerID       *kernel.UUID
	status        Status
	currency      string
	lines         []*Line
	createdAt     time.Time
	submittedAt   *time.Time
	isConstructed bool
}

// NewBasket creates an open basket. ownerID is nil for anonymous visitors.
func NewBasket(id kernel.UUID, ownerID *kernel.UUID, currency string) (*Basket, error) {
	return RestoreBasket(id, ownerID, Open, currency, nil, time.Now().UTC(), nil)
}

func RestoreBasket(
	id kernel.UUID,
	ownerID *kernel.UUID,
	status Status,
	currency string,
	lines []*Line,
	createdAt time.Time,
	submittedAt *time.Time,
) (*Basket, error) {
	if err := errors.Join(id.Validate(), status.Validate(), kernel.ValidateCurrency(currency)); err != nil {
		return nil, err
	}
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Basket{
		id:            id,
		ownerID:       ownerID,
		status:        status,
		currency:      currency,
		lines:         slices.Clone(lines),
		createdAt:     createdAt,
		submittedAt:   submittedAt,
		isConstructed: true,
	}, nil
}

func (b *Basket) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBasketIsNotConstructed
	}
	return nil
}

func (b *Basket) ID() kernel.UUID {
	return b.id
}

func (b *Basket) OwnerID() *kernel.UUID {
	return b.ownerID
}

func (b *Basket) Status() Status {
	return b.status
}

func (b *Basket) Currency() string {
	return b.currency
}

func (b *Basket) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Basket) SubmittedAt() *time.Time {
	return b.submittedAt
}

func (b *Basket) Lines() []*Line {
	return slices.Clone(b.lines)
}

func (b *Basket) IsEmpty() bool {
	return len(b.lines) == 0
}

func (b *Basket) NumLines() int {
	return len(b.lines)
}

func (b *Basket) NumItems() int {
	n := 0
	for _, l := range b.lines {
		n += l.quantity
	}
	return n
}

// Total is the sum of all line prices.
func (b *Basket) Total() kernel.Price {
	total := kernel.ZeroPrice(b.currency)
	for _, l := range b.lines {
		if sum, err := total.Add(l.LinePrice()); err == nil {
			total = sum
		}
	}
	return total
}

// IsShippingRequired reports whether any product in the basket ships.
func (b *Basket) IsShippingRequired() bool {
	for _, l := range b.lines {
		if l.product.IsShippingRequired() {
			return true
		}
	}
	return false
}

// AssignOwner attaches an anonymous basket to a user who just signed in.
func (b *Basket) AssignOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	if b.ownerID != nil && !b.ownerID.IsEqual(ownerID) {
		return errs.NewStateIsInvalidError("basket owner", b.ownerID.String())
	}
	b.ownerID = &ownerID
	return nil
}

// AddProduct adds quantity items priced at unitPrice. Adding a product that
// is already in the basket from the same stock record increases its quantity
// and refreshes the unit price.
func (b *Basket) AddProduct(
	lineID kernel.UUID,
	product *catalogue.Product,
	record *partner.StockRecord,
	unitPrice kernel.Price,
	quantity int,
) (*Line, error) {
	if err := b.ensureEditable(); err != nil {
		return nil, err
	}
	if err := errors.Join(lineID.Validate(), product.Validate(), record.Validate(), unitPrice.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.Currency() != b.currency {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("basket is in %s, price is in %s", b.currency, unitPrice.Currency()),
		)
	}

	for _, l := range b.lines {
		if l.matches(product, record) {
			l.quantity += quantity
			l.unitPrice = unitPrice
			return l, nil
		}
	}

	line := &Line{
		id:          lineID,
		product:     product,
		stockRecord: record,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
	b.lines = append(b.lines, line)
	return line, nil
}

// SetLineQuantity changes a line's quantity. Zero or less removes the line.
func (b *Basket) SetLineQuantity(lineID kernel.UUID, quantity int) error {
	if err := b.ensureEditable(); err != nil {
		return err
	}
	idx := b.lineIndex(lineID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}
	if quantity <= 0 {
		b.lines = slices.Delete(b.lines, idx, idx+1)
		return nil
	}
	b.lines[idx].quantity = quantity
	return nil
}

func (b *Basket) RemoveLine(lineID kernel.UUID) error {
	return b.SetLineQuantity(lineID, 0)
}

func (b *Basket) Line(lineID kernel.UUID) (*Line, bool) {
	idx := b.lineIndex(lineID)
	if idx < 0 {
		return nil, false
	}
	return b.lines[idx], true
}

// Flush removes every line.
func (b *Basket) Flush() error {
	if err := b.ensureEditable(); err != nil {
		return err
	}
	b.lines = nil
	return nil
}

func (b *Basket) Freeze() error {
	s, err := b.status.Freeze()
	if err != nil {
		return err
	}
	b.status = s
	return nil
}

func (b *Basket) Thaw() error {
	s, err := b.status.Thaw()
	if err != nil {
		return err
	}
	b.status = s
	return nil
}

func (b *Basket) Submit() error {
	s, err := b.status.Submit()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	b.status = s
	b.submittedAt = &now
	return nil
}

func (b *Basket) ensureEditable() error {
	if !b.status.IsEditable() {
		return errs.NewStateIsInvalidError("basket", b.status.String())
	}
	return nil
}

func (b *Basket) lineIndex(lineID kernel.UUID) int {
	return slices.IndexFunc(b.lines, func(l *Line) bool { return l.id.IsEqual(lineID) })
}
