// Package order holds the Order aggregate: what was bought, at what price,
// where it goes and who pays for it.
//
// An order is created from a frozen basket at the end of checkout. It keeps
// a snapshot of the basket lines and of both addresses so that later edits
// to the catalogue or the address book do not rewrite history.
//
// Status follows the fulfilment pipeline:
//
//	Pending ──> Processing ──> Shipped ──> Complete
//	   │            │
//	   └────────────┴──> Cancelled
//
// Staff annotate orders with notes. Notes marked visible on the frontend are
// shown to the customer.
package order
