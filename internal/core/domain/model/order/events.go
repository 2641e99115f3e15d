package order

import "time"

const PlacedTopic = "order.placed"

// PlacedEvent announces a new order to the rest of the shop.
type PlacedEvent struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	UserID     string    `json:"user_id,omitempty"`
	GuestEmail string    `json:"guest_email,omitempty"`
	Currency   string    `json:"currency"`
	Total      string    `json:"total_incl_tax"`
	NumItems   int       `json:"num_items"`
	PlacedAt   time.Time `json:"placed_at"`
}

func NewPlacedEvent(o *Order) PlacedEvent {
	e := PlacedEvent{
		OrderID:    o.ID().String(),
		Number:     o.Number(),
		GuestEmail: o.GuestEmail(),
		Currency:   o.Currency(),
		Total:      o.Total().InclTax().StringFixed(2),
		NumItems:   o.NumItems(),
		PlacedAt:   o.PlacedAt(),
	}
	if o.UserID() != nil {
		e.UserID = o.UserID().String()
	}
	return e
}

func (e PlacedEvent) Topic() string { return PlacedTopic }
func (e PlacedEvent) Key() string   { return e.Number }
