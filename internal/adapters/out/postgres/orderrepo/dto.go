// Package orderrepo stores placed orders with their lines and notes.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NumberSequence feeds order numbers.
const NumberSequence = "order_number_seq"

// OrderDTO keeps both addresses as JSON snapshots so that later address
// book edits do not change placed orders.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number             string          `gorm:"type:varchar(128);not null;uniqueIndex"`
	BasketID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID             *uuid.UUID      `gorm:"type:uuid;index"`
	GuestEmail         string          `gorm:"type:varchar(254);not null;default:''"`
	Currency           string          `gorm:"type:char(3);not null"`
	ShippingAddress    *address.Fields `gorm:"type:jsonb;serializer:json"`
	BillingAddress     *address.Fields `gorm:"type:jsonb;serializer:json"`
	ShippingMethodCode string          `gorm:"type:varchar(128);not null"`
	ShippingMethodName string          `gorm:"type:varchar(128);not null;default:''"`
	Shipping           MoneyDTO        `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethodCode  string          `gorm:"type:varchar(128);not null;default:''"`
	Payment            MoneyDTO        `gorm:"embedded;embeddedPrefix:payment_"`
	Total              MoneyDTO        `gorm:"embedded;embeddedPrefix:total_"`
	Status             int             `gorm:"not null;index"`
	PlacedAt           time.Time       `gorm:"not null;index"`
	Lines              []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes              []NoteDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type MoneyDTO struct {
	ExclTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type LineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"not null"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	StockRecordID uuid.UUID `gorm:"type:uuid;not null"`
	Title         string    `gorm:"type:varchar(255);not null"`
	UPC           string    `gorm:"column:upc;type:varchar(64);not null;default:''"`
	PartnerSKU    string    `gorm:"column:partner_sku;type:varchar(128);not null"`
	Quantity      int       `gorm:"not null"`
	UnitPrice     MoneyDTO  `gorm:"embedded;embeddedPrefix:unit_price_"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

type NoteDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorID            *uuid.UUID `gorm:"type:uuid"`
	Message             string     `gorm:"type:text;not null"`
	IsVisibleOnFrontend bool       `gorm:"not null;default:false"`
	CreatedAt           time.Time  `gorm:"not null"`
}

func (NoteDTO) TableName() string {
	return "order_notes"
}

func moneyFromDomain(p kernel.Price) MoneyDTO {
	return MoneyDTO{ExclTax: p.ExclTax(), Tax: p.Tax()}
}

func (m MoneyDTO) toDomain(currency string) (kernel.Price, error) {
	return kernel.NewPrice(currency, m.ExclTax, m.Tax)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func addressFields(a *address.Address) *address.Fields {
	if a == nil {
		return nil
	}
	f := a.Fields()
	return &f
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := make([]LineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, LineDTO{
			ID:            l.ID().Bytes(),
			OrderID:       orderID,
			Position:      i,
			ProductID:     l.ProductID().Bytes(),
			StockRecordID: l.StockRecordID().Bytes(),
			Title:         l.Title(),
			UPC:           l.UPC(),
			PartnerSKU:    l.PartnerSKU(),
			Quantity:      l.Quantity(),
			UnitPrice:     moneyFromDomain(l.UnitPrice()),
		})
	}

	notes := make([]NoteDTO, 0, len(o.Notes()))
	for _, n := range o.Notes() {
		notes = append(notes, NoteDTO{
			ID:                  n.ID().Bytes(),
			OrderID:             orderID,
			AuthorID:            optionalID(n.AuthorID()),
			Message:             n.Message(),
			IsVisibleOnFrontend: n.IsVisibleOnFrontend(),
			CreatedAt:           n.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		Number:             o.Number(),
		BasketID:           o.BasketID().Bytes(),
		UserID:             optionalID(o.UserID()),
		GuestEmail:         o.GuestEmail(),
		Currency:           o.Currency(),
		ShippingAddress:    addressFields(o.ShippingAddress()),
		BillingAddress:     addressFields(o.BillingAddress()),
		ShippingMethodCode: o.ShippingMethodCode(),
		ShippingMethodName: o.ShippingMethodName(),
		Shipping:           moneyFromDomain(o.ShippingCharge()),
		PaymentMethodCode:  o.PaymentMethodCode(),
		Payment:            moneyFromDomain(o.PaymentCharge()),
		Total:              moneyFromDomain(o.Total()),
		Status:             int(o.Status()),
		PlacedAt:           o.PlacedAt(),
		Lines:              lines,
		Notes:              notes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	basketID, err := kernel.UUIDFromGoogle(dto.BasketID)
	if err != nil {
		return nil, err
	}
	userID, err := optionalUUID(dto.UserID)
	if err != nil {
		return nil, err
	}

	d := order.Details{
		Number:             dto.Number,
		BasketID:           basketID,
		UserID:             userID,
		GuestEmail:         dto.GuestEmail,
		Currency:           dto.Currency,
		ShippingMethodCode: dto.ShippingMethodCode,
		ShippingMethodName: dto.ShippingMethodName,
		PaymentMethodCode:  dto.PaymentMethodCode,
	}
	if d.ShippingAddress, err = addressToDomain(dto.ShippingAddress); err != nil {
		return nil, err
	}
	if d.BillingAddress, err = addressToDomain(dto.BillingAddress); err != nil {
		return nil, err
	}
	if d.ShippingCharge, err = dto.Shipping.toDomain(dto.Currency); err != nil {
		return nil, err
	}
	if d.PaymentCharge, err = dto.Payment.toDomain(dto.Currency); err != nil {
		return nil, err
	}
	if d.Total, err = dto.Total.toDomain(dto.Currency); err != nil {
		return nil, err
	}

	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(dto.Currency, l)
		if lineErr != nil {
			return nil, lineErr
		}
		d.Lines = append(d.Lines, line)
	}

	notes := make([]order.Note, 0, len(dto.Notes))
	for _, n := range dto.Notes {
		note, noteErr := noteToDomain(n)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, note)
	}

	return order.RestoreOrder(id, d, order.Status(dto.Status), notes, dto.PlacedAt)
}

func addressToDomain(f *address.Fields) (*address.Address, error) {
	if f == nil {
		return nil, nil
	}
	a, err := address.NewAddress(*f)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func lineToDomain(currency string, dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.Line{}, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.Line{}, err
	}
	recordID, err := kernel.UUIDFromGoogle(dto.StockRecordID)
	if err != nil {
		return order.Line{}, err
	}
	price, err := dto.UnitPrice.toDomain(currency)
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(id, productID, recordID, dto.Title, dto.UPC, dto.PartnerSKU, dto.Quantity, price)
}

func noteToDomain(dto NoteDTO) (order.Note, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.Note{}, err
	}
	authorID, err := optionalUUID(dto.AuthorID)
	if err != nil {
		return order.Note{}, err
	}
	return order.NewNote(id, dto.Message, dto.IsVisibleOnFrontend, authorID, dto.CreatedAt)
}
