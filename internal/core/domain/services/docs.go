// Package services holds domain logic that spans several aggregates.
//
// The package includes:
//   - OrderTotalCalculator: adds shipping and payment charges to a basket total
//   - OrderPlacer: turns a basket into an order, allocating stock as it goes
//   - order numbering
package services
