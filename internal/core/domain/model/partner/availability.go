package partner

import "fmt"

type availabilityKind int

const (
	kindUnavailable availabilityKind = iota
	kindStockRequired
)

// Availability answers whether a quantity of a product may be bought.
type Availability struct {
	kind         availabilityKind
	numAvailable int
}

// Unavailable is the availability of a product nobody sells.
func Unavailable() Availability {
	return Availability{kind: kindUnavailable}
}

// StockRequired limits purchases to numAvailable items.
func StockRequired(numAvailable int) Availability {
	return Availability{kind: kindStockRequired, numAvailable: numAvailable}
}

func (a Availability) IsAvailableToBuy() bool {
	return a.kind == kindStockRequired && a.numAvailable > 0
}

func (a Availability) NumAvailable() int {
	return a.numAvailable
}

// IsPurchasePermitted reports whether quantity items may be bought. When it
// returns false the second value explains why.
func (a Availability) IsPurchasePermitted(quantity int) (bool, string) {
	if a.kind == kindUnavailable {
		return false, "unavailable"
	}
	if a.numAvailable <= 0 {
		return false, "no stock available"
	}
	if quantity > a.numAvailable {
		return false, fmt.Sprintf("a maximum of %d can be bought", a.numAvailable)
	}
	return true, ""
}

// Message is a short customer-facing summary.
func (a Availability) Message() string {
	switch {
	case a.kind == kindUnavailable:
		return "Unavailable"
	case a.numAvailable > 0:
		return fmt.Sprintf("In stock (%d available)", a.numAvailable)
	default:
		return "Unavailable"
	}
}

// Code is a machine-readable status used by API responses.
func (a Availability) Code() string {
	if a.IsAvailableToBuy() {
		return "instock"
	}
	return "outofstock"
}
