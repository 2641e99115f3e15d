// Package shipping prices the delivery of a basket.
//
// A Method turns a basket into a shipping charge. Built-in methods (free
// shipping, no shipping required, a fixed price and store collection) are
// stateless. Configured methods are managed from the dashboard and persisted:
//
//   - OrderAndItemCharges: a charge per order plus a charge per shipped item,
//     waived when the basket total reaches a threshold
//   - WeightBased: a charge looked up in weight bands for the basket weight
//
// A Repository decides which methods are on offer for a basket and address.
package shipping
