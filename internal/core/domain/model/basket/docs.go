// Package basket implements the shopping basket aggregate.
//
// A basket collects lines (product, stock record, quantity and the unit price
// at the time the line was added). Only open baskets can be edited. Checkout
// freezes a basket while payment is taken and submits it once the order is
// placed:
//
//	Open -> Frozen -> Submitted
//	Frozen -> Open (thaw, when placing the order fails)
package basket
