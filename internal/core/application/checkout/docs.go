// Package checkout drives a customer from basket to order.
//
// The checkout is a chain of steps. Each step declares pre-conditions,
// which send the customer back to an earlier step with a message when they
// fail, and skip-conditions, which send the customer forward when the step
// has nothing to ask. Choices made along the way live in SessionData until
// the order is placed.
package checkout
