// Package analytics records who visits the shop and what they do there.
//
// Visitors are keyed by session key and carry the parsed user agent. Every
// tracked request adds a PageView. Product, user and search records feed the
// dashboard reports, and product records carry a popularity score that is
// recomputed on a schedule.
package analytics
