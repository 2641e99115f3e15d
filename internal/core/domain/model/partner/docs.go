// Package partner models stock held by fulfilment partners and the strategy
// that turns a product plus its stock records into a price and an
// availability for a customer.
package partner
